package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/repolink/internal/vcs"
)

// Refs lists local branches and tags.
// Annotated tags report the commit they point at, not the tag object.
func (r *Repo) Refs(ctx context.Context) ([]vcs.Ref, error) {
	out, err := outputGit(ctx, r.dir, "for-each-ref",
		"--format=%(refname)%09%(objectname)%09%(*objectname)",
		"refs/heads", "refs/tags")
	if err != nil {
		return nil, fmt.Errorf("failed to list refs: %w", err)
	}
	return parseRefs(string(out)), nil
}

// parseRefs parses for-each-ref output of the form
// "<refname>\t<objectname>\t<peeled objectname>".
func parseRefs(output string) []vcs.Ref {
	var refs []vcs.Ref
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		ref := vcs.Ref{Commit: fields[1]}
		if len(fields) > 2 && fields[2] != "" {
			ref.Commit = fields[2]
		}
		switch {
		case strings.HasPrefix(fields[0], "refs/heads/"):
			ref.Name = strings.TrimPrefix(fields[0], "refs/heads/")
			ref.Kind = vcs.Branch
		case strings.HasPrefix(fields[0], "refs/tags/"):
			ref.Name = strings.TrimPrefix(fields[0], "refs/tags/")
			ref.Kind = vcs.Tag
		default:
			continue
		}
		refs = append(refs, ref)
	}
	vcs.SortRefs(refs)
	return refs
}
