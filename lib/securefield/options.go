// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package securefield

import (
	"log/slog"

	"github.com/bureau-foundation/secureinput/lib/clock"
	"github.com/bureau-foundation/secureinput/lib/tui"
)

// DefaultWidth is the input width in cells when Options.Width is zero.
const DefaultWidth = 32

// DefaultEchoCharacter masks each character of a hidden value.
const DefaultEchoCharacter = '•'

// Options configures a Field. The zero value is a usable optional
// field with a visible clear button and no external validator.
type Options struct {
	// Value is the initial field content.
	Value string

	// ClearButtonHidden suppresses the trailing clear button and its
	// key binding.
	ClearButtonHidden bool

	// Mandatory rejects an empty value with MandatoryMessage.
	Mandatory bool

	// Validator is consulted after the mandatory check passes.
	Validator Validator

	// OnValueChange receives the new value after every edit the field
	// makes itself (typing, paste, clear). Host writes through
	// SetValue are not echoed back.
	OnValueChange func(value string)

	// OnValidityChange receives the validity after every validation
	// run. Nil discards it.
	OnValidityChange func(valid bool)

	// Theme colors the field. Zero value means tui.DefaultTheme.
	Theme tui.Theme

	// KeyMap binds the clear and reveal actions. Zero value means
	// DefaultKeyMap.
	KeyMap KeyMap

	// EchoCharacter masks hidden input. Zero means DefaultEchoCharacter.
	EchoCharacter rune

	// Width is the input width in cells. Zero means DefaultWidth.
	Width int

	// CharLimit caps the value length in runes. Zero is unlimited.
	CharLimit int

	// AllowReveal enables the reveal key, which toggles between the
	// masked and the plain rendering of the value.
	AllowReveal bool

	// ShowFingerprint draws three color swatches derived from the
	// value, so users can notice a typo without revealing it.
	ShowFingerprint bool

	// Clock supplies time for label animation. Nil means clock.Real().
	Clock clock.Clock

	// Logger receives debug records of validation runs. Values are
	// never logged, only their length. Nil discards.
	Logger *slog.Logger
}

func (options Options) withDefaults() Options {
	if options.OnValueChange == nil {
		options.OnValueChange = func(string) {}
	}
	if options.OnValidityChange == nil {
		options.OnValidityChange = func(bool) {}
	}
	if options.Theme == (tui.Theme{}) {
		options.Theme = tui.DefaultTheme
	}
	if options.KeyMap.isZero() {
		options.KeyMap = DefaultKeyMap
	}
	if options.EchoCharacter == 0 {
		options.EchoCharacter = DefaultEchoCharacter
	}
	if options.Width <= 0 {
		options.Width = DefaultWidth
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	return options
}
