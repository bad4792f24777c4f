package link

import (
	"context"
	"errors"

	"github.com/raphi011/repolink/internal/log"
	"github.com/raphi011/repolink/internal/vcs"
)

// DefaultRemote is looked up when no remote is given.
const DefaultRemote = "origin"

// LocateRemote returns the configured URL of the named remote.
// An unknown remote is an UnknownRemoteError listing similar remote names.
func LocateRemote(ctx context.Context, b Backend, name string) (string, error) {
	if name == "" {
		name = DefaultRemote
	}
	url, err := b.RemoteURL(ctx, name)
	if err != nil {
		var unknown *vcs.UnknownRemoteError
		if errors.As(err, &unknown) && len(unknown.Suggestions) == 0 {
			if names, lerr := b.Remotes(ctx); lerr == nil {
				unknown.Suggestions = vcs.Suggest(name, names)
			} else {
				log.FromContext(ctx).Debug("listing remotes for suggestions failed", "error", lerr)
			}
		}
		return "", err
	}
	return url, nil
}
