// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package securefield

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the field's own key bindings. Editing keys (cursor
// movement, deletion, paste) come from the underlying text input.
type KeyMap struct {
	// Clear empties the field, like clicking the clear button.
	Clear key.Binding

	// Reveal toggles masking. Active only with Options.AllowReveal.
	Reveal key.Binding
}

// DefaultKeyMap is the built-in binding set. Both keys are free in the
// text input's own key map.
var DefaultKeyMap = KeyMap{
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("C-l", "clear"),
	),
	Reveal: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "reveal"),
	),
}

func (keyMap KeyMap) isZero() bool {
	return len(keyMap.Clear.Keys()) == 0 && len(keyMap.Reveal.Keys()) == 0
}
