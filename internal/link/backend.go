package link

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/repolink/internal/git"
	"github.com/raphi011/repolink/internal/gogit"
	"github.com/raphi011/repolink/internal/log"
	"github.com/raphi011/repolink/internal/vcs"
)

// Backend answers questions about a single repository on disk.
// Implementations are bound to their repository when opened and are safe for
// concurrent use.
type Backend interface {
	// IsTag reports whether ref names a tag.
	IsTag(ctx context.Context, ref string) (bool, error)
	// TagCommit returns the commit a tag points at.
	TagCommit(ctx context.Context, tag string) (string, error)
	// CommitHash resolves a commit-ish to a full hash.
	CommitHash(ctx context.Context, rev string) (string, error)
	// RemoteURL returns the URL of the named remote.
	RemoteURL(ctx context.Context, name string) (string, error)
	// Remotes lists configured remote names.
	Remotes(ctx context.Context) ([]string, error)
	// PathExists reports whether path is present in commit.
	PathExists(ctx context.Context, commit, path string) (bool, error)
	// Refs lists branches and tags.
	Refs(ctx context.Context) ([]vcs.Ref, error)
}

// Backend kinds accepted by OpenBackend.
const (
	BackendGit   = "git"
	BackendGoGit = "go-git"
)

// BackendKinds lists the accepted backend names, for flag help and completion.
var BackendKinds = []string{BackendGit, BackendGoGit}

// ValidateBackend returns an error unless kind names a known backend.
// The empty string selects the default.
func ValidateBackend(kind string) error {
	switch kind {
	case "", BackendGit, BackendGoGit:
		return nil
	}
	return fmt.Errorf("invalid backend %q (must be %s)", kind, strings.Join(BackendKinds, " or "))
}

// OpenBackend opens the repository containing dir with the named backend.
// An empty kind selects the git CLI.
func OpenBackend(ctx context.Context, kind, dir string) (Backend, error) {
	if err := ValidateBackend(kind); err != nil {
		return nil, err
	}
	l := log.FromContext(ctx)
	if kind == BackendGoGit {
		r, err := gogit.Open(dir)
		if err != nil {
			return nil, err
		}
		l.Debug("opened repository", "backend", BackendGoGit, "dir", r.Dir())
		return r, nil
	}
	r, err := git.Open(ctx, dir)
	if err != nil {
		return nil, err
	}
	l.Debug("opened repository", "backend", BackendGit, "dir", r.Dir())
	return r, nil
}
