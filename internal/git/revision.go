package git

import (
	"context"
	"strings"

	"github.com/raphi011/repolink/internal/vcs"
)

// IsTag reports whether ref names a tagged commit exactly.
// Uses "git describe --exact-match" and only looks at its exit status.
// describe also names tagged trees and blobs, so ref must peel to a commit.
func (r *Repo) IsTag(ctx context.Context, ref string) (bool, error) {
	if isOption(ref) {
		return false, nil
	}
	tagged, err := probeGit(ctx, r.dir, "describe", "--exact-match", ref)
	if err != nil || !tagged {
		return false, err
	}
	return probeGit(ctx, r.dir, "rev-parse", "--verify", "--quiet", ref+"^{commit}")
}

// TagCommit returns the commit a tag points at.
// Annotated tags are dereferenced, so the result is never a tag object.
func (r *Repo) TagCommit(ctx context.Context, tag string) (string, error) {
	if isOption(tag) {
		return "", &vcs.UnknownTagError{Name: tag}
	}
	out, err := outputGit(ctx, r.dir, "rev-list", "-n", "1", tag)
	if err != nil && isTransportError(err) {
		return "", err
	}
	hash := firstLine(out)
	if err != nil || !vcs.IsFullHash(hash) {
		return "", &vcs.UnknownTagError{Name: tag}
	}
	return hash, nil
}

// CommitHash resolves a commit-ish to a full commit hash.
// "--revs-only" keeps git from echoing names it cannot resolve, so an unknown
// name yields empty output. The "^{commit}" peel makes git refuse trees and
// blobs. Output that is not a single hash (ranges, exclusions) is rejected as
// well.
func (r *Repo) CommitHash(ctx context.Context, rev string) (string, error) {
	if isOption(rev) {
		return "", &vcs.UnknownRevisionError{Name: rev}
	}
	out, err := outputGit(ctx, r.dir, "rev-parse", "--revs-only", "--verify", "--quiet", rev+"^{commit}")
	if err != nil && isTransportError(err) {
		return "", err
	}
	hash := strings.TrimSpace(string(out))
	if err != nil || !vcs.IsFullHash(hash) {
		return "", &vcs.UnknownRevisionError{Name: rev}
	}
	return hash, nil
}
