package link

import (
	"context"
	"errors"

	"github.com/raphi011/repolink/internal/log"
	"github.com/raphi011/repolink/internal/vcs"
)

// DefaultRevision is resolved when no revision is given.
const DefaultRevision = "HEAD"

// ResolveRevision resolves ref to a full commit hash.
//
// Tags are checked first: if ref names a tag, the tag is dereferenced to its
// commit and a failure is an UnknownTagError. Otherwise ref is parsed as a
// commit-ish and a failure is an UnknownRevisionError carrying near-miss
// branch and tag names.
func ResolveRevision(ctx context.Context, b Backend, ref string) (string, error) {
	if ref == "" {
		ref = DefaultRevision
	}
	l := log.FromContext(ctx)

	isTag, err := b.IsTag(ctx, ref)
	if err != nil {
		return "", err
	}
	if isTag {
		l.Debug("resolving tag", "ref", ref)
		return b.TagCommit(ctx, ref)
	}

	l.Debug("resolving revision", "ref", ref)
	hash, err := b.CommitHash(ctx, ref)
	if err != nil {
		var unknown *vcs.UnknownRevisionError
		if errors.As(err, &unknown) && len(unknown.Suggestions) == 0 {
			unknown.Suggestions = suggestRefs(ctx, b, ref)
		}
		return "", err
	}
	return hash, nil
}

// suggestRefs returns branch and tag names close to ref.
// Listing failures only cost the suggestions.
func suggestRefs(ctx context.Context, b Backend, ref string) []string {
	refs, err := b.Refs(ctx)
	if err != nil {
		log.FromContext(ctx).Debug("listing refs for suggestions failed", "error", err)
		return nil
	}
	return vcs.Suggest(ref, vcs.RefNames(refs))
}
