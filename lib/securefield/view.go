// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package securefield

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/secureinput/lib/tui"
)

// View renders the field as two rows. The top row carries the
// validation message when the value is invalid, otherwise the floated
// title when there is a value. The bottom row is the masked input,
// with the title inline while empty, followed by the clear button and
// the optional fingerprint swatches.
func (field *Field) View() string {
	now := field.options.Clock.Now()
	theme := field.options.Theme
	width := field.options.Width

	labelPosition := field.label.Position(now)
	labelColor := tui.BlendColors(theme.Placeholder, theme.Accent, labelPosition)

	var top string
	switch {
	case !field.state.Valid:
		messageColor := tui.BlendColors(theme.FaintText, theme.Error, field.feedback.Position(now))
		top = lipgloss.NewStyle().Foreground(messageColor).Render(field.state.Message)
	case field.input.Value() != "":
		top = lipgloss.NewStyle().Foreground(labelColor).Render(field.title)
	}

	// The placeholder color follows the label so the title fades back
	// in as it returns to the input row.
	input := field.input
	input.PlaceholderStyle = input.PlaceholderStyle.Foreground(labelColor)
	bottom := tui.FitLine(input.View(), width)

	rows := tui.FitLine(top, width) + "\n" + bottom
	if !field.options.ClearButtonHidden {
		button := lipgloss.NewStyle().Foreground(theme.ClearButton).Render(clearButtonGlyph)
		rows = tui.SpliceOverlay(rows, []string{button}, field.clearButtonColumn(), 1)
	}
	if field.options.ShowFingerprint {
		lines := strings.SplitN(rows, "\n", fieldHeight)
		lines[1] += " " + renderSwatches(field.Fingerprint())
		rows = strings.Join(lines, "\n")
	}
	return rows
}

// renderSwatches draws one block per color. An empty value renders
// blank cells so the row width is stable.
func renderSwatches(colors []lipgloss.Color) string {
	if len(colors) == 0 {
		return strings.Repeat(" ", fingerprintSwatches)
	}
	var builder strings.Builder
	for _, color := range colors {
		builder.WriteString(lipgloss.NewStyle().Foreground(color).Render("■"))
	}
	return builder.String()
}
