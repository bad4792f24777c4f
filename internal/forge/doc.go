// Package forge turns a git remote URL and a commit into a browsable link on
// the hosting service behind the remote.
//
// # Providers
//
// [Provider] is a closed set: [GitHub], [Bitbucket] and [Unrecognized]. Each
// recognized provider has a URL template registered in a map; supporting a
// new service means adding a constant and a template, not another branch.
//
// # Detection
//
// [Detect] maps a remote host to a provider:
//
//  1. Host aliases from config (for self-hosted instances of a known service)
//  2. github.com and bitbucket.org
//  3. Anything else is [Unrecognized]
//
// # Usage
//
//	remote, err := forge.ParseRemote("git@github.com:acme/widget.git")
//	provider := forge.Detect(remote.Host, cfg.Hosts)
//	url, ok := forge.Compose(remote, provider, commit, "src/app.js")
//	// ok is false for Unrecognized: there is no link, but nothing failed
package forge
