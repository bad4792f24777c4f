package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/repolink/internal/link"
	"github.com/raphi011/repolink/internal/log"
	"github.com/raphi011/repolink/internal/output"
	"github.com/raphi011/repolink/internal/ui/picker"
)

func newURLCmd() *cobra.Command {
	var (
		remote          string
		revision        string
		file            string
		copyToClipboard bool
		jsonOutput      bool
		interactive     bool
	)

	cmd := &cobra.Command{
		Use:     "url [file]",
		Short:   "Print the web URL of a commit or file",
		Aliases: []string{"link"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the web URL of a commit, or of a file at that commit.

The revision (default HEAD) may be a branch, tag or any commit-ish; tags are
dereferenced to the commit they point at. The file must exist in that commit.

Remotes on unrecognized hosts print nothing. Use -v to see why.`,
		Example: `  repolink url                     # link to the checked-out commit
  repolink url src/app.js          # link to a file at HEAD
  repolink url -c v1.0 README.md   # link to a file at a tag
  repolink url -r upstream         # use another remote
  repolink url -i                  # pick the revision interactively
  repolink url --copy              # also copy the URL to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := configFrom(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if len(args) == 1 {
				if file != "" {
					return errors.New("file given both as argument and with --file")
				}
				file = args[0]
			}
			if remote == "" {
				remote = c.Remote
			}

			backend, err := openBackend(ctx)
			if err != nil {
				return err
			}

			if interactive {
				if !isInteractive() {
					return errors.New("--interactive needs a terminal")
				}
				refs, err := backend.Refs(ctx)
				if err != nil {
					return err
				}
				if len(refs) == 0 {
					return errors.New("no branches or tags to pick from")
				}
				ref, ok, err := picker.Pick("Revision", refs)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				revision = ref.Name
			}

			result, err := link.PublicURL(ctx, backend, link.Options{
				Remote:   remote,
				Revision: revision,
				File:     file,
				Hosts:    c.Hosts,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.JSON(result)
			}
			if !result.HasURL() {
				return nil
			}
			out.Println(result.URL)

			doCopy := c.Copy
			if cmd.Flags().Changed("copy") {
				doCopy = copyToClipboard
			}
			if doCopy {
				if err := clipboard.WriteAll(result.URL); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				} else {
					l.Debug("copied to clipboard", "url", result.URL)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&remote, "remote", "r", "", fmt.Sprintf("Remote to link to (default %q or config)", link.DefaultRemote))
	cmd.Flags().StringVarP(&revision, "commit", "c", "", "Branch, tag or commit-ish (default HEAD)")
	cmd.Flags().StringVar(&file, "file", "", "Path of a file in the repository")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the URL to the clipboard")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick the revision from a fuzzy list")
	cmd.MarkFlagsMutuallyExclusive("commit", "interactive")

	cmd.RegisterFlagCompletionFunc("remote", completeRemotes)
	cmd.RegisterFlagCompletionFunc("commit", completeRefs)

	return cmd
}
