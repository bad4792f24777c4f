package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/repolink/internal/link"
	"github.com/raphi011/repolink/internal/vcs"
)

// completionBackend opens the repository for shell completion.
// PersistentPreRunE does not run for completions, so flags and the global
// config are read directly.
func completionBackend(ctx context.Context) (link.Backend, error) {
	dir := repoDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	kind := backendFlag
	if kind == "" && cfg != nil {
		kind = cfg.Backend
	}
	return link.OpenBackend(ctx, kind, dir)
}

// completeRemotes provides remote name completion.
func completeRemotes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx := context.Background()
	backend, err := completionBackend(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, err := backend.Remotes(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeRefs provides branch and tag completion, described by kind.
func completeRefs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 && cmd.Name() == "resolve" {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx := context.Background()
	backend, err := completionBackend(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	refs, err := backend.Refs(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, r := range refs {
		if strings.HasPrefix(r.Name, toComplete) {
			matches = append(matches, r.Name+"\t"+refDescription(r))
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

func refDescription(r vcs.Ref) string {
	return r.Kind.String() + " " + r.Commit[:min(7, len(r.Commit))]
}

// filterPrefix returns the values starting with prefix.
func filterPrefix(values []string, prefix string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			matches = append(matches, v)
		}
	}
	return matches
}
