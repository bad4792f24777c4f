package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/repolink/internal/config"
	"github.com/raphi011/repolink/internal/log"
	"github.com/raphi011/repolink/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Manage repolink configuration.

Global config: ~/.config/repolink/config.toml (or $REPOLINK_CONFIG)
Local config:  .repolink.toml (in the repository root)

Without a subcommand, shows the effective configuration.`,
		Example: `  repolink config init     # Create default global config
  repolink config show     # Show effective config
  repolink config --json   # Same, as JSON`,
	}

	show := newConfigShowCmd()
	cmd.RunE = show.RunE
	cmd.Flags().AddFlagSet(show.Flags())

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(show)

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  repolink config init      # Create global config
  repolink config init -f   # Overwrite existing config
  repolink config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if stdout {
				out.Printf("%s", config.DefaultConfig())
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			log.FromContext(ctx).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration as TOML.

The result merges the global config, the repository's .repolink.toml,
REPOLINK_* env vars and the --backend flag.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := configFrom(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				return out.JSON(c)
			}

			if path, err := config.Path(); err == nil {
				out.Printf("# global: %s\n", path)
			}
			if local := config.FindLocal(config.WorkDirFromContext(ctx)); local != "" {
				out.Printf("# local:  %s\n", local)
			}
			return c.Encode(out.Writer())
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
