// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package securefield implements a masked text input for terminal UIs:
// a floating label, inline validation messaging, and a clear button.
//
// A [Field] re-runs [Validate] when it mounts ([Field.Init]) and on
// every change to its value, whether the change came from typing, the
// clear affordance, or the host calling [Field.SetValue]. The result is
// a [State] that drives rendering and is pushed to the host through
// [Options.OnValidityChange]. Edits made by the user are reported
// through [Options.OnValueChange].
//
// Validation order is fixed: an empty value in a mandatory field is
// rejected with [MandatoryMessage] before any external [Validator]
// runs. Validators return a three-way [Outcome]: accepted, accepted
// with an explicit validity flag, or rejected with a message that is
// shown verbatim.
//
// The field is a bubbletea component. The host routes every message
// to [Field.Update] and renders [Field.View] after each update:
//
//	field := securefield.New("Passphrase", securefield.Options{
//	    Mandatory: true,
//	    Validator: securefield.MinLength(12),
//	    OnValidityChange: func(valid bool) { model.canSubmit = valid },
//	})
//	initCmd := field.Init() // validates and takes focus
//
// All methods must be called from the bubbletea update loop.
package securefield
