// Package git answers repository questions by running the git CLI.
//
// All operations use [os/exec.Command] to call git directly rather than a Go
// git library, so that results honor the user's git configuration. Every
// command is scoped to the repository with "git -C <dir>"; the process
// working directory is never changed, which keeps concurrent lookups against
// different repositories independent.
//
// # Revision Queries
//
//   - [Repo.IsTag]: "git describe --exact-match", exit status only
//   - [Repo.TagCommit]: "git rev-list -n 1", the commit a tag points at
//   - [Repo.CommitHash]: "git rev-parse --revs-only", any other commit-ish
//   - [Repo.Refs]: branches and tags with their (peeled) commits
//
// # Remote Queries
//
//   - [Repo.RemoteURL]: "git config --get remote.<name>.url"
//   - [Repo.Remotes]: configured remote names
//
// # Tree Queries
//
//   - [Repo.PathExists]: "git cat-file -e <commit>:<path>", stderr discarded
package git
