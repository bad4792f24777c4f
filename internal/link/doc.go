// Package link turns a revision, a remote and an optional file path into a
// browsable web URL.
//
// PublicURL is the entry point. It looks up the remote URL and resolves the
// revision to a full commit hash concurrently, checks that the file exists in
// that commit, then hands the pieces to package forge to compose the URL.
// Repository queries go through a Backend, implemented by package git (the git
// CLI) and package gogit (in-process go-git).
package link
