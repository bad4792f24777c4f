package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/raphi011/repolink/internal/forge"
	"github.com/raphi011/repolink/internal/link"
	"github.com/raphi011/repolink/internal/log"
	"github.com/raphi011/repolink/internal/output"
	"github.com/raphi011/repolink/internal/ui/static"
	"github.com/raphi011/repolink/internal/vcs"
)

func newRemoteCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "remote [name]",
		Short:   "Show remotes and the provider each links to",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Show configured remotes.

With a name, prints that remote's URL. Without one, lists every remote with
the hosting provider, owner and project parsed from its URL.`,
		Example: `  repolink remote           # table of remotes
  repolink remote origin    # URL of origin
  repolink remote --json    # remotes as JSON`,
		ValidArgsFunction: completeRemotes,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			backend, err := openBackend(ctx)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				url, err := link.LocateRemote(ctx, backend, args[0])
				if err != nil {
					return err
				}
				out.Println(url)
				return nil
			}

			infos, err := describeRemotes(ctx, backend, configFrom(ctx).Hosts)
			if err != nil {
				return err
			}

			if jsonOutput {
				type remoteJSON struct {
					Name     string         `json:"name"`
					URL      string         `json:"url"`
					Provider forge.Provider `json:"provider"`
					Host     string         `json:"host,omitempty"`
					Owner    string         `json:"owner,omitempty"`
					Project  string         `json:"project,omitempty"`
				}
				list := make([]remoteJSON, len(infos))
				for i, r := range infos {
					list[i] = remoteJSON{
						Name:     r.Name,
						URL:      r.URL,
						Provider: r.Provider,
						Host:     r.Remote.Host,
						Owner:    r.Remote.Owner,
						Project:  r.Remote.Project,
					}
				}
				return out.JSON(list)
			}

			if len(infos) == 0 {
				log.FromContext(ctx).Println("No remotes configured")
				return nil
			}
			rows := make([][]string, len(infos))
			for i, r := range infos {
				rows[i] = static.RemoteTableRow(r)
			}
			out.Print(static.RenderTable(static.RemoteHeaders, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// describeRemotes looks up and parses every configured remote.
func describeRemotes(ctx context.Context, backend link.Backend, hosts map[string]string) ([]static.RemoteInfo, error) {
	names, err := backend.Remotes(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]static.RemoteInfo, 0, len(names))
	for _, name := range names {
		url, err := link.LocateRemote(ctx, backend, name)
		if errors.Is(err, vcs.ErrUnknownRemote) {
			// A remote with only a fetch refspec has no URL to link to.
			log.FromContext(ctx).Debug("remote has no URL", "remote", name)
			infos = append(infos, static.RemoteInfo{Name: name})
			continue
		}
		if err != nil {
			return nil, err
		}
		info := static.RemoteInfo{Name: name, URL: url}
		if r, err := forge.ParseRemote(url); err == nil {
			info.Remote = r
			info.Provider = forge.Detect(r.Host, hosts)
			info.Parsed = true
		}
		infos = append(infos, info)
	}
	return infos, nil
}
