// Package ui holds the terminal presentation used by repolink.
//
// Subpackages:
//
//   - styles: the shared lipgloss palette
//   - static: non-interactive tables (the remote listing)
//   - picker: the bubbletea fuzzy picker behind "url -i"
//
// Primary output (URLs, hashes, tables) goes to stdout. The picker draws on
// stderr so that "repolink url -i | pbcopy" still works.
package ui
