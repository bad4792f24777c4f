// Package config handles loading and validation of repolink configuration.
//
// Configuration is read from ~/.config/repolink/config.toml (or the file named
// by REPOLINK_CONFIG), optionally overridden per repository by a
// .repolink.toml at the repository root.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (--remote, --backend, --copy)
//   - REPOLINK_REMOTE and REPOLINK_BACKEND env vars
//   - .repolink.toml in the repository
//   - Global config file
//   - Default values
//
// # Key Settings
//
//   - remote: remote to link to (default: "origin")
//   - backend: "git" runs the git CLI, "go-git" reads the repository in-process
//   - copy: also copy printed URLs to the clipboard
//
// # Hosts
//
// The [hosts] section maps self-hosted domains onto one of the supported URL
// layouts:
//
//	[hosts]
//	"git.mycompany.com" = "github"
//	"stash.internal" = "bitbucket"
package config
