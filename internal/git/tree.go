package git

import (
	"context"
	"strings"
)

// PathExists reports whether path exists in the tree of commit.
// A missing path is false with a nil error; only failing to run git is an error.
// Leading and trailing slashes are ignored.
func (r *Repo) PathExists(ctx context.Context, commit, path string) (bool, error) {
	if isOption(commit) {
		return false, nil
	}
	path = strings.Trim(path, "/")
	return probeGit(ctx, r.dir, "cat-file", "-e", commit+":"+path)
}
