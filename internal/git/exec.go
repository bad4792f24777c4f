package git

import (
	"context"
	"errors"
	"os/exec"

	"github.com/raphi011/repolink/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a git command with context support and verbose logging.
func runGit(ctx context.Context, dir string, args ...string) error {
	return notFound(cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...))
}

// outputGit executes a git command with context support and verbose logging,
// returning stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	out, err := cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
	return out, notFound(err)
}

// probeGit reports whether a git command exits successfully.
// Its output is discarded.
func probeGit(ctx context.Context, dir string, args ...string) (bool, error) {
	ok, err := cmd.ProbeContext(ctx, "", "git", gitArgs(dir, args)...)
	return ok, notFound(err)
}

func notFound(err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return ErrGitNotFound
	}
	return err
}

// isTransportError reports errors that mean git could not be asked at all,
// as opposed to git answering that something does not exist.
func isTransportError(err error) bool {
	return errors.Is(err, ErrGitNotFound) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
