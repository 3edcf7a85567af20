// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package securefield

// OutcomeKind distinguishes the three results a Validator can return.
type OutcomeKind int

const (
	// Accepted means the validator ran and the value passed.
	Accepted OutcomeKind = iota

	// AcceptedWithFlag means the validator ran without an error and
	// decided validity explicitly. A false flag marks the field
	// invalid without a message.
	AcceptedWithFlag

	// Rejected means the value failed; the outcome carries the
	// message shown above the field.
	Rejected
)

// String returns the kind name used in log records.
func (kind OutcomeKind) String() string {
	switch kind {
	case Accepted:
		return "accepted"
	case AcceptedWithFlag:
		return "accepted_with_flag"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome is the result of running a Validator. The zero value is an
// Accepted outcome.
type Outcome struct {
	kind    OutcomeKind
	flag    bool
	message string
}

// Accept returns an Accepted outcome.
func Accept() Outcome {
	return Outcome{kind: Accepted}
}

// AcceptWithFlag returns an AcceptedWithFlag outcome carrying valid.
func AcceptWithFlag(valid bool) Outcome {
	return Outcome{kind: AcceptedWithFlag, flag: valid}
}

// Reject returns a Rejected outcome with message.
func Reject(message string) Outcome {
	return Outcome{kind: Rejected, message: message}
}

// RejectError returns a Rejected outcome carrying err's text, or
// Accept() if err is nil.
func RejectError(err error) Outcome {
	if err == nil {
		return Accept()
	}
	return Reject(err.Error())
}

// Kind returns which of the three results this is.
func (outcome Outcome) Kind() OutcomeKind {
	return outcome.kind
}

// Valid returns the validity the outcome implies: true for Accepted,
// the flag for AcceptedWithFlag, false for Rejected.
func (outcome Outcome) Valid() bool {
	switch outcome.kind {
	case AcceptedWithFlag:
		return outcome.flag
	case Rejected:
		return false
	default:
		return true
	}
}

// Message returns the rejection message. Empty for accepted outcomes.
func (outcome Outcome) Message() string {
	if outcome.kind != Rejected {
		return ""
	}
	return outcome.message
}
