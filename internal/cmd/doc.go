// Package cmd provides helpers for executing shell commands with proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users. Every command
// is echoed through the context logger when verbose mode is on.
//
// # Usage
//
//	// Run in a specific directory, discarding stdout:
//	if err := cmd.RunContext(ctx, repoDir, "git", "fetch"); err != nil {
//	    return fmt.Errorf("git fetch: %w", err)
//	}
//
//	// Capture stdout:
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "rev-parse", "HEAD")
//
//	// Only care whether the command succeeds:
//	ok, err := cmd.ProbeContext(ctx, repoDir, "git", "describe", "--exact-match", "v1.0")
//
// # Design Notes
//
// repolink shells out to the git CLI by default rather than using a Go git
// library, so that results match what the user sees in their terminal
// (config includes, alternates, partial clones). The go-git backend exists for
// environments without a git binary.
package cmd
