// Package vcs holds the backend-neutral vocabulary shared by the git CLI and
// go-git backends: the error taxonomy for failed lookups, ref listings, and
// helpers to validate commit hashes and suggest near-miss names.
package vcs
