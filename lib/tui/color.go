// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// BlendColors returns the color a fraction t of the way from "from" to
// "to", interpolated in CIE-L*a*b* so the midpoint looks perceptually
// halfway. Colors that are not hex values (ANSI palette indexes) cannot
// be blended; the nearer endpoint is returned instead.
func BlendColors(from, to lipgloss.Color, t float64) lipgloss.Color {
	t = clampUnit(t)
	if t == 0 {
		return from
	}
	if t == 1 {
		return to
	}

	start, startErr := colorful.Hex(string(from))
	end, endErr := colorful.Hex(string(to))
	if startErr != nil || endErr != nil {
		if t < 0.5 {
			return from
		}
		return to
	}
	return lipgloss.Color(start.BlendLab(end, t).Clamped().Hex())
}
