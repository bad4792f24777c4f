package git

import (
	"context"
	"errors"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com) or use --backend go-git")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsRepoPath returns true if the given path is inside a git repository.
// Bare repositories count.
func IsRepoPath(ctx context.Context, path string) bool {
	err := runGit(ctx, path, "rev-parse", "--git-dir")
	return err == nil
}
