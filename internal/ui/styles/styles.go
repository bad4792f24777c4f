// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions so the picker and the static
// tables render consistently.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent color.Color = lipgloss.Color("212")

	// Error is used for error messages (red)
	Error color.Color = lipgloss.Color("196")

	// Muted is used for secondary text (gray)
	Muted color.Color = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal color.Color = lipgloss.Color("252")
)

// TitleStyle for prompts and table headers
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Primary)
}

// SelectedStyle for the cursor-highlighted item
func SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Accent)
}

// NormalStyle for regular items
func NormalStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Normal)
}

// MutedStyle for details and help text
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Muted)
}

// HighlightStyle for fuzzy-matched characters
func HighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true).
		Underline(true)
}

// ErrorStyle for error messages
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Error)
}
