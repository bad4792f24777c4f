package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/repolink/internal/config"
	"github.com/raphi011/repolink/internal/git"
	"github.com/raphi011/repolink/internal/link"
	"github.com/raphi011/repolink/internal/log"
	"github.com/raphi011/repolink/internal/output"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	repoDir     string
	backendFlag string

	// Global config as loaded from disk, before per-repo overrides
	cfg *config.Config
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "repolink",
	Short: "Print web links to commits and files of a git repository",
	Long: `repolink resolves a branch, tag or commit of a local git repository to its
full commit hash and prints the matching web URL on GitHub or Bitbucket.

The hosting provider is inferred from the remote URL. Remotes on other hosts
produce no URL unless their domain is mapped in the [hosts] config section.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Validate mutually exclusive flags
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		ctx := cmd.Context()
		l := log.New(os.Stderr, verbose, quiet)
		ctx = log.WithLogger(ctx, l)

		workDir := repoDir
		if workDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			workDir = wd
		}
		ctx = config.WithWorkDir(ctx, workDir)

		eff, err := effectiveConfig(l, workDir)
		if err != nil {
			return err
		}
		ctx = config.WithConfig(ctx, eff)
		cmd.SetContext(ctx)

		// Only the CLI backend needs a git binary
		if eff.Backend == link.BackendGit {
			return git.CheckGit()
		}
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// effectiveConfig layers per-repo config, env vars and flags over the global config.
func effectiveConfig(l *log.Logger, workDir string) (*config.Config, error) {
	local, err := config.LoadLocal(workDir)
	if err != nil {
		l.Printf("Warning: %v (using global config)\n", err)
	}
	eff := *config.MergeLocal(cfg, local)

	if err := config.ApplyEnvOverrides(&eff); err != nil {
		return nil, err
	}
	if backendFlag != "" {
		if err := link.ValidateBackend(backendFlag); err != nil {
			return nil, err
		}
		eff.Backend = backendFlag
	}
	return &eff, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'repolink -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.PersistentFlags().StringVarP(&repoDir, "repo", "C", "", "Run as if started in `dir`")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Repository backend: git or go-git (default from config)")
	rootCmd.MarkPersistentFlagDirname("repo")
	rootCmd.RegisterFlagCompletionFunc("backend", cobra.FixedCompletions(link.BackendKinds, cobra.ShellCompDirectiveNoFileComp))

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newURLCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newRemoteCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
