package main

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/repolink/internal/config"
	"github.com/raphi011/repolink/internal/link"
)

// configFrom returns the effective config from ctx, or defaults.
func configFrom(ctx context.Context) *config.Config {
	if c := config.FromContext(ctx); c != nil {
		return c
	}
	d := config.Default()
	return &d
}

// openBackend opens the repository at the context's work dir with the configured backend.
func openBackend(ctx context.Context) (link.Backend, error) {
	c := configFrom(ctx)
	return link.OpenBackend(ctx, c.Backend, config.WorkDirFromContext(ctx))
}

// isInteractive reports whether stdin and stderr are terminals.
// The picker reads keys from stdin and draws on stderr.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
}
