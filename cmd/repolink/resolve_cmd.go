package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/repolink/internal/link"
	"github.com/raphi011/repolink/internal/output"
)

func newResolveCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "resolve [revision]",
		Short:   "Print the full commit hash of a revision",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the full commit hash a branch, tag or commit-ish resolves to.

Tags are checked first and dereferenced to their commit. Without an
argument, HEAD is resolved.`,
		Example: `  repolink resolve          # hash of HEAD
  repolink resolve v1.0     # commit a tag points at
  repolink resolve main~2   # any commit-ish`,
		ValidArgsFunction: completeRefs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			revision := link.DefaultRevision
			if len(args) == 1 {
				revision = args[0]
			}

			backend, err := openBackend(ctx)
			if err != nil {
				return err
			}
			hash, err := link.ResolveRevision(ctx, backend, revision)
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.JSON(struct {
					Revision string `json:"revision"`
					Commit   string `json:"commit"`
				}{revision, hash})
			}
			out.Println(hash)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
