package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// completionScripts maps each supported shell to its cobra generator.
var completionScripts = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        (*cobra.Command).GenZshCompletion,
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
}

func completionShells() []string {
	shells := make([]string, 0, len(completionScripts))
	for shell := range completionScripts {
		shells = append(shells, shell)
	}
	slices.Sort(shells)
	return shells
}

func newCompletionCmd() *cobra.Command {
	shells := completionShells()

	return &cobra.Command{
		Use:       "completion <" + strings.Join(shells, "|") + ">",
		Short:     "Generate completion script",
		GroupID:   GroupConfig,
		Long:      "Generate a shell completion script. Remote names, branches and tags\nare completed from the repository at completion time.",
		ValidArgs: shells,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `  repolink completion fish > ~/.config/fish/completions/repolink.fish
  repolink completion bash > ~/.local/share/bash-completion/completions/repolink
  repolink completion zsh > "${fpath[1]}/_repolink"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := completionScripts[args[0]]
			if !ok {
				return fmt.Errorf("unsupported shell %q", args[0])
			}
			return gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
