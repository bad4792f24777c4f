package link

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/raphi011/repolink/internal/forge"
	"github.com/raphi011/repolink/internal/log"
	"github.com/raphi011/repolink/internal/vcs"
)

// Options selects what PublicURL links to. Zero fields take defaults.
type Options struct {
	Remote   string // remote name, default "origin"
	Revision string // branch, tag or commit-ish, default "HEAD"
	File     string // optional path inside the repository

	// Hosts maps self-hosted domains to "github" or "bitbucket".
	Hosts map[string]string
}

func (o Options) withDefaults() Options {
	if o.Remote == "" {
		o.Remote = DefaultRemote
	}
	if o.Revision == "" {
		o.Revision = DefaultRevision
	}
	return o
}

// Link is the result of PublicURL.
type Link struct {
	URL      string         `json:"url"`
	Provider forge.Provider `json:"provider"`
	Remote   forge.Remote   `json:"remote"`
	Commit   string         `json:"commit"`
	File     string         `json:"file,omitempty"`
}

// HasURL reports whether the remote's host is recognized and a URL was composed.
func (l Link) HasURL() bool {
	return l.URL != ""
}

// PublicURL composes the web URL of a commit, or of a file at that commit.
//
// The remote URL and the commit hash are looked up concurrently; the first
// failure is returned. When opts.File is set it must exist in the commit, or a
// FileNotFoundError is returned. A remote on an unrecognized host (or one that
// cannot be parsed, such as a local path) yields a Link without a URL and a
// nil error.
func PublicURL(ctx context.Context, b Backend, opts Options) (Link, error) {
	opts = opts.withDefaults()
	l := log.FromContext(ctx)

	var rawURL, commit string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawURL, err = LocateRemote(gctx, b, opts.Remote)
		return err
	})
	g.Go(func() error {
		var err error
		commit, err = ResolveRevision(gctx, b, opts.Revision)
		return err
	})
	if err := g.Wait(); err != nil {
		return Link{}, err
	}

	// "/src/app.js" and "src/app.js" name the same file; "/" alone is the commit.
	file := strings.Trim(opts.File, "/")
	link := Link{Commit: commit, File: file}

	if file != "" {
		ok, err := b.PathExists(ctx, commit, file)
		if err != nil {
			return Link{}, err
		}
		if !ok {
			return Link{}, &vcs.FileNotFoundError{Path: file, Commit: commit}
		}
	}

	remote, err := forge.ParseRemote(rawURL)
	link.Remote = remote
	if err != nil {
		l.Debug("remote has no web address", "remote", opts.Remote, "url", rawURL, "error", err)
		return link, nil
	}

	link.Provider = forge.Detect(remote.Host, opts.Hosts)
	url, ok := forge.Compose(remote, link.Provider, commit, file)
	if !ok {
		l.Debug("unrecognized host, no URL", "host", remote.Host)
		return link, nil
	}
	link.URL = url
	return link, nil
}
