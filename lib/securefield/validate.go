// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package securefield

// MandatoryMessage is shown when a mandatory field is empty.
const MandatoryMessage = "This is a mandatory field"

// Validator checks a field value. It is called synchronously on the
// update loop after every value change, so it must be cheap. A
// validator that panics is not recovered.
type Validator func(value string) Outcome

// State is the presentation state derived from the last validation
// run. Valid implies an empty Message.
type State struct {
	Valid   bool
	Message string
}

// Validate runs the validation procedure for value:
//
//  1. Start valid with no message.
//  2. A mandatory field with an empty value is invalid with
//     MandatoryMessage, and the validator is not consulted.
//  3. Otherwise a non-nil validator decides: Rejected makes the state
//     invalid with the outcome's message, AcceptedWithFlag sets
//     validity to the flag with no message, Accepted leaves it valid.
//
// Validate is pure; calling it again with the same inputs returns the
// same State.
func Validate(value string, mandatory bool, validator Validator) State {
	if mandatory && value == "" {
		return State{Valid: false, Message: MandatoryMessage}
	}
	if validator == nil {
		return State{Valid: true}
	}

	outcome := validator(value)
	switch outcome.Kind() {
	case Rejected:
		return State{Valid: false, Message: outcome.Message()}
	case AcceptedWithFlag:
		return State{Valid: outcome.Valid()}
	default:
		return State{Valid: true}
	}
}
