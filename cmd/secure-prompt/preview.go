// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/secureinput/lib/securefield"
	"github.com/bureau-foundation/secureinput/lib/tui"
)

// preview is one fixed field configuration rendered by --preview.
type preview struct {
	caption string
	title   string
	options securefield.Options
}

// previews are the reference renderings used to eyeball theme and
// layout changes without driving the interactive prompt.
var previews = []preview{
	{
		caption: "light theme, long value, clear button hidden",
		title:   "First Name",
		options: securefield.Options{
			Value:             "Bowerick Wowbagger the Infinitely Prolonged from outer space",
			ClearButtonHidden: true,
			Theme:             tui.LightTheme,
		},
	},
	{
		caption: "dark theme, short value",
		title:   "First Name",
		options: securefield.Options{
			Value: "Peter",
			Theme: tui.DarkTheme,
		},
	},
}

// renderPreviews writes every preview to writer, each under a caption.
// Fields are mounted but unfocused, so no cursor is drawn.
func renderPreviews(writer io.Writer) error {
	for index, entry := range previews {
		field := securefield.New(entry.title, entry.options)
		field.Init()
		field.Blur()

		caption := lipgloss.NewStyle().Foreground(entry.options.Theme.FaintText).Render("# " + field.Title() + ": " + entry.caption)
		if index > 0 {
			if _, err := fmt.Fprintln(writer); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(writer, "%s\n%s\n", caption, field.View()); err != nil {
			return err
		}
	}
	return nil
}
