// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the color palette for Bureau's input components. All
// colors are true-color hex values so transitions can blend between
// them; lipgloss downsamples for terminals with fewer colors.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color // Masked characters and revealed text.
	FaintText  lipgloss.Color // Help lines and secondary chrome.

	// Label colors. The title sits inline in Placeholder while the
	// field is empty and floats above it in Accent once it has a value.
	Placeholder lipgloss.Color
	Accent      lipgloss.Color

	// Validation message shown above an invalid field.
	Error lipgloss.Color

	// Trailing clear affordance.
	ClearButton lipgloss.Color

	// Cursor color while the field has keyboard focus.
	Cursor lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = DarkTheme

// DarkTheme is tuned for dark terminal backgrounds, the common case
// for development environments and tmux sessions.
var DarkTheme = Theme{
	NormalText: lipgloss.Color("#d0d0d0"),
	FaintText:  lipgloss.Color("#8a8a8a"),

	Placeholder: lipgloss.Color("#767676"),
	Accent:      lipgloss.Color("#5fafff"), // blue, the platform accent

	Error: lipgloss.Color("#ff5f5f"),

	ClearButton: lipgloss.Color("#8e8e93"), // system gray

	Cursor: lipgloss.Color("#5fafff"),
}

// LightTheme is tuned for light terminal backgrounds.
var LightTheme = Theme{
	NormalText: lipgloss.Color("#1c1c1c"),
	FaintText:  lipgloss.Color("#6c6c6c"),

	Placeholder: lipgloss.Color("#a8a8a8"),
	Accent:      lipgloss.Color("#0060df"),

	Error: lipgloss.Color("#d70000"),

	ClearButton: lipgloss.Color("#8e8e93"),

	Cursor: lipgloss.Color("#0060df"),
}

// ThemeMode selects how a host picks its theme.
type ThemeMode string

const (
	// ThemeAuto queries the terminal background color.
	ThemeAuto ThemeMode = "auto"
	// ThemeDark forces DarkTheme.
	ThemeDark ThemeMode = "dark"
	// ThemeLight forces LightTheme.
	ThemeLight ThemeMode = "light"
)

// ResolveTheme returns the theme for mode. For ThemeAuto the output's
// background is queried; terminals that do not answer are treated as
// dark. Unknown modes resolve to DefaultTheme.
func ResolveTheme(mode ThemeMode, output *termenv.Output) Theme {
	switch mode {
	case ThemeDark:
		return DarkTheme
	case ThemeLight:
		return LightTheme
	case ThemeAuto:
		if output != nil && !output.HasDarkBackground() {
			return LightTheme
		}
		return DarkTheme
	default:
		return DefaultTheme
	}
}
