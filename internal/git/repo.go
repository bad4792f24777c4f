package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Repo runs git queries against one repository on disk.
type Repo struct {
	dir string
}

// Open returns a Repo for the repository containing dir.
// dir may be a working tree, a subdirectory of one, or a bare repository.
func Open(ctx context.Context, dir string) (*Repo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve repository path: %w", err)
	}
	if err := CheckGit(); err != nil {
		return nil, err
	}
	if !IsRepoPath(ctx, abs) {
		return nil, fmt.Errorf("not a git repository: %s", abs)
	}
	return &Repo{dir: abs}, nil
}

// Dir returns the absolute path the repository was opened with.
func (r *Repo) Dir() string {
	return r.dir
}

// isOption reports whether a user-supplied ref would be parsed by git as a flag.
func isOption(ref string) bool {
	return strings.HasPrefix(ref, "-")
}

// firstLine returns the trimmed first line of command output.
func firstLine(out []byte) string {
	s := strings.TrimSpace(string(out))
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		s = strings.TrimSpace(s[:idx])
	}
	return s
}
