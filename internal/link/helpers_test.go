package link

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runGitCommand runs git in repoPath and returns trimmed stdout.
func runGitCommand(t *testing.T, repoPath string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

// commitFile writes and commits a file, returning the new HEAD hash.
func commitFile(t *testing.T, repoPath, name string) string {
	t.Helper()
	full := filepath.Join(repoPath, name)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(full, []byte("content for "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	runGitCommand(t, repoPath, "add", name)
	runGitCommand(t, repoPath, "commit", "-m", "Add "+name)
	return runGitCommand(t, repoPath, "rev-parse", "HEAD")
}

// testRepo is a repository with two commits: first adds README.md and is
// tagged v1.0 (annotated), second adds src/app.js and is HEAD of main.
type testRepo struct {
	path   string
	first  string
	second string
}

// setupTestRepo creates a testRepo whose origin points at remoteURL.
func setupTestRepo(t *testing.T, remoteURL string) testRepo {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	repoPath := filepath.Join(dir, "repo")
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCommand(t, repoPath, "init", "-b", "main")
	runGitCommand(t, repoPath, "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "config", "user.name", "Test User")
	runGitCommand(t, repoPath, "config", "commit.gpgsign", "false")
	runGitCommand(t, repoPath, "config", "tag.gpgsign", "false")

	r := testRepo{path: repoPath}
	r.first = commitFile(t, repoPath, "README.md")
	runGitCommand(t, repoPath, "tag", "-a", "v1.0", "-m", "release 1.0")
	r.second = commitFile(t, repoPath, "src/app.js")
	if remoteURL != "" {
		runGitCommand(t, repoPath, "remote", "add", "origin", remoteURL)
	}
	return r
}

// forEachBackend runs fn once per backend kind, each as a parallel subtest.
func forEachBackend(t *testing.T, repoPath string, fn func(t *testing.T, b Backend)) {
	t.Helper()
	for _, kind := range BackendKinds {
		t.Run(kind, func(t *testing.T) {
			t.Parallel()
			b, err := OpenBackend(context.Background(), kind, repoPath)
			if err != nil {
				t.Fatalf("OpenBackend(%s) = %v", kind, err)
			}
			fn(t, b)
		})
	}
}
