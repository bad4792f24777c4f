// Package gogit answers the same repository questions as package git, but
// reads the object database in-process with go-git instead of running the git
// CLI. It is selected with --backend go-git and needs no git binary.
package gogit

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/raphi011/repolink/internal/log"
	"github.com/raphi011/repolink/internal/vcs"
)

// maxTagDepth bounds how many tag objects are followed when peeling a tag.
const maxTagDepth = 10

// Repo reads one repository on disk.
type Repo struct {
	dir  string
	repo *git.Repository
}

// Open opens the repository containing dir, walking up to find .git.
func Open(dir string) (*Repo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve repository path: %w", err)
	}
	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("not a git repository: %s", abs)
		}
		return nil, fmt.Errorf("open repository %s: %w", abs, err)
	}
	return &Repo{dir: abs, repo: repo}, nil
}

// Dir returns the absolute path the repository was opened with.
func (r *Repo) Dir() string {
	return r.dir
}

// IsTag reports whether ref is exactly the name of a tag.
func (r *Repo) IsTag(ctx context.Context, ref string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	log.FromContext(ctx).Debug("go-git: lookup tag", "ref", ref)
	tag, err := r.repo.Reference(plumbing.NewTagReferenceName(ref), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("lookup tag %q: %w", ref, err)
	}
	// Tags on trees or blobs do not name a commit.
	_, ok := r.peel(tag.Hash())
	return ok, nil
}

// TagCommit returns the commit a tag points at, following annotated tag objects.
func (r *Repo) TagCommit(ctx context.Context, tag string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	log.FromContext(ctx).Debug("go-git: dereference tag", "tag", tag)
	ref, err := r.repo.Reference(plumbing.NewTagReferenceName(tag), true)
	if err != nil {
		return "", &vcs.UnknownTagError{Name: tag}
	}
	commit, ok := r.peel(ref.Hash())
	if !ok {
		return "", &vcs.UnknownTagError{Name: tag}
	}
	return commit.String(), nil
}

// CommitHash resolves a commit-ish (branch, hash prefix, HEAD~n, ...) to a full commit hash.
func (r *Repo) CommitHash(ctx context.Context, rev string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	log.FromContext(ctx).Debug("go-git: resolve revision", "rev", rev)
	base, ok := supportedRevision(rev)
	if !ok {
		return "", &vcs.UnknownRevisionError{Name: rev}
	}
	h, err := r.repo.ResolveRevision(plumbing.Revision(base))
	if err != nil || h == nil || h.IsZero() {
		return "", &vcs.UnknownRevisionError{Name: rev}
	}
	commit, ok := r.peel(*h)
	if !ok {
		log.FromContext(ctx).Debug("go-git: revision is not a commit", "rev", rev, "object", h.String())
		return "", &vcs.UnknownRevisionError{Name: rev}
	}
	return commit.String(), nil
}

// supportedRevision prepares rev for ResolveRevision, which silently ignores
// the syntax it does not implement and would answer with the wrong commit.
// Trailing "^{commit}" and "^{}" are removed since the result is peeled to a
// commit anyway. It reports false for other "^{type}" peels, "<rev>:<path>"
// and ":/text" lookups, and "@{...}" reflog forms. "^{/text}" message searches
// are left to ResolveRevision.
func supportedRevision(rev string) (string, bool) {
	for {
		trimmed := strings.TrimSuffix(strings.TrimSuffix(rev, "^{commit}"), "^{}")
		if trimmed == rev {
			break
		}
		rev = trimmed
	}
	if rev == "" {
		return "", false
	}

	head := rev
	if i := strings.Index(rev, "^{/"); i >= 0 {
		head = rev[:i]
	}
	if strings.Contains(head, ":") || strings.Contains(head, "@{") {
		return "", false
	}

	rest := rev
	for {
		i := strings.Index(rest, "^{")
		if i < 0 {
			return rev, true
		}
		rest = rest[i+2:]
		if !strings.HasPrefix(rest, "/") && !strings.HasPrefix(rest, "commit}") {
			return "", false
		}
	}
}

// RemoteURL returns the first configured URL of the named remote.
func (r *Repo) RemoteURL(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	log.FromContext(ctx).Debug("go-git: lookup remote", "name", name)
	remote, err := r.repo.Remote(name)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", &vcs.UnknownRemoteError{Name: name}
		}
		return "", fmt.Errorf("lookup remote %q: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 || strings.TrimSpace(urls[0]) == "" {
		return "", &vcs.UnknownRemoteError{Name: name}
	}
	return strings.TrimSpace(urls[0]), nil
}

// Remotes returns the names of all configured remotes, sorted.
func (r *Repo) Remotes(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	names := make([]string, 0, len(remotes))
	for _, rem := range remotes {
		names = append(names, rem.Config().Name)
	}
	sort.Strings(names)
	return names, nil
}

// PathExists reports whether path exists in the tree of commit.
// A missing path or commit is false with a nil error.
func (r *Repo) PathExists(ctx context.Context, commit, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	log.FromContext(ctx).Debug("go-git: lookup path", "commit", commit, "path", path)
	c, err := r.repo.CommitObject(plumbing.NewHash(commit))
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read commit %s: %w", commit, err)
	}

	path = strings.Trim(path, "/")
	if path == "" {
		return true, nil
	}
	tree, err := c.Tree()
	if err != nil {
		return false, fmt.Errorf("read tree of %s: %w", commit, err)
	}
	if _, err := tree.FindEntry(path); err != nil {
		if isMissingEntry(err) {
			return false, nil
		}
		return false, fmt.Errorf("lookup %s in %s: %w", path, commit, err)
	}
	return true, nil
}

// Refs lists local branches and tags with the commits they point at.
func (r *Repo) Refs(ctx context.Context) ([]vcs.Ref, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	iter, err := r.repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list refs: %w", err)
	}
	defer iter.Close()

	var refs []vcs.Ref
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		switch {
		case name.IsBranch():
			refs = append(refs, vcs.Ref{Name: name.Short(), Kind: vcs.Branch, Commit: ref.Hash().String()})
		case name.IsTag():
			if commit, ok := r.peel(ref.Hash()); ok {
				refs = append(refs, vcs.Ref{Name: name.Short(), Kind: vcs.Tag, Commit: commit.String()})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list refs: %w", err)
	}
	vcs.SortRefs(refs)
	return refs, nil
}

// peel follows tag objects from h until it reaches a commit.
func (r *Repo) peel(h plumbing.Hash) (plumbing.Hash, bool) {
	for range maxTagDepth {
		obj, err := r.repo.Object(plumbing.AnyObject, h)
		if err != nil {
			return plumbing.ZeroHash, false
		}
		switch o := obj.(type) {
		case *object.Commit:
			return o.Hash, true
		case *object.Tag:
			h = o.Target
		default:
			return plumbing.ZeroHash, false
		}
	}
	return plumbing.ZeroHash, false
}

func isMissingEntry(err error) bool {
	return errors.Is(err, object.ErrEntryNotFound) ||
		errors.Is(err, object.ErrDirectoryNotFound) ||
		errors.Is(err, object.ErrFileNotFound) ||
		errors.Is(err, object.ErrUnsupportedObject) ||
		errors.Is(err, plumbing.ErrObjectNotFound)
}
