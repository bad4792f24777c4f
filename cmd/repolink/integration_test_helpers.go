//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/repolink/internal/config"
	"github.com/raphi011/repolink/internal/log"
	"github.com/raphi011/repolink/internal/output"
)

// testContext returns a context with default config, a silent logger and
// output discarded, rooted at a fresh temp dir.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, _ := testContextWithOutput(t, nil, t.TempDir())
	return ctx
}

// testContextWithOutput returns a context rooted at dir whose primary output
// is captured in the returned buffer. A nil cfg means defaults.
func testContextWithOutput(t *testing.T, cfg *config.Config, dir string) (context.Context, *bytes.Buffer) {
	t.Helper()

	if cfg == nil {
		d := config.Default()
		cfg = &d
	}

	var buf bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, &buf)
	ctx = config.WithConfig(ctx, cfg)
	ctx = config.WithWorkDir(ctx, dir)
	return ctx, &buf
}

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates a git repo with an initial commit in dir/name.
// The commit holds README.md and src/app.js and is tagged v1.0.
// origin points at https://github.com/test/<name>.git.
// Returns the absolute path to the created repo (with symlinks resolved).
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)

	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Join(repoPath, "src"), 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCommand(t, repoPath, "init")
	runGitCommand(t, repoPath, "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "config", "user.name", "Test User")
	runGitCommand(t, repoPath, "config", "commit.gpgsign", "false")
	runGitCommand(t, repoPath, "config", "tag.gpgsign", "false")

	files := map[string]string{
		"README.md":  "# " + name + "\n",
		"src/app.js": "console.log('hi')\n",
	}
	for path, content := range files {
		if err := os.WriteFile(filepath.Join(repoPath, path), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	runGitCommand(t, repoPath, "add", ".")
	runGitCommand(t, repoPath, "commit", "-m", "Initial commit")
	runGitCommand(t, repoPath, "tag", "-a", "v1.0", "-m", "Release 1.0")
	runGitCommand(t, repoPath, "remote", "add", "origin", "https://github.com/test/"+name+".git")

	return repoPath
}

// makeCommit adds a commit touching filename and returns its hash.
func makeCommit(t *testing.T, repoPath, filename string) string {
	t.Helper()

	if err := os.WriteFile(filepath.Join(repoPath, filename), []byte("content of "+filename+"\n"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", filename, err)
	}
	runGitCommand(t, repoPath, "add", filename)
	runGitCommand(t, repoPath, "commit", "-m", "Add "+filename)
	return headCommit(t, repoPath)
}

// headCommit returns the full hash of HEAD.
func headCommit(t *testing.T, repoPath string) string {
	t.Helper()
	return runGitCommand(t, repoPath, "rev-parse", "HEAD")
}

// runGitCommand runs a git command in dir and returns trimmed stdout.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var stderr string
		if ee, ok := err.(*exec.ExitError); ok {
			stderr = string(ee.Stderr)
		}
		t.Fatalf("git %v failed: %v\n%s", args, err, stderr)
	}
	return strings.TrimSpace(string(out))
}
