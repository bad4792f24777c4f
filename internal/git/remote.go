package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/repolink/internal/vcs"
)

// RemoteURL returns the configured fetch URL of the named remote.
func (r *Repo) RemoteURL(ctx context.Context, name string) (string, error) {
	if name == "" || isOption(name) {
		return "", &vcs.UnknownRemoteError{Name: name}
	}
	out, err := outputGit(ctx, r.dir, "config", "--get", "remote."+name+".url")
	if err != nil && isTransportError(err) {
		return "", err
	}
	url := firstLine(out)
	if err != nil || url == "" {
		return "", &vcs.UnknownRemoteError{Name: name}
	}
	return url, nil
}

// Remotes returns the names of all configured remotes.
func (r *Repo) Remotes(ctx context.Context) ([]string, error) {
	out, err := outputGit(ctx, r.dir, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
