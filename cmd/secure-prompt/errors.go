// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"
)

// Exit codes. Scripts distinguish a rejected value from a cancelled
// prompt and from an operational failure.
const (
	exitError      = 1
	exitValidation = 2
	exitCancelled  = 130
)

// errorCategory classifies errors for the exit code and the message
// prefix.
type errorCategory string

const (
	// categoryValidation is bad input: flags, config, or a rejected
	// value in headless mode.
	categoryValidation errorCategory = "validation"

	// categoryInternal is an unexpected failure: I/O, terminal,
	// locked memory, encryption.
	categoryInternal errorCategory = "internal"
)

// cliError is a categorized error with an optional hint printed on its
// own paragraph.
type cliError struct {
	category errorCategory
	err      error
	hint     string
}

func (e *cliError) Error() string {
	if e.hint == "" {
		return e.err.Error()
	}
	return e.err.Error() + "\n\n" + e.hint
}

func (e *cliError) Unwrap() error { return e.err }

// withHint attaches a remediation hint and returns the receiver.
func (e *cliError) withHint(hint string) *cliError {
	e.hint = strings.TrimSpace(hint)
	return e
}

// validation creates a validation error: the caller provided bad input.
func validation(format string, args ...any) *cliError {
	return &cliError{category: categoryValidation, err: fmt.Errorf(format, args...)}
}

// internal creates an internal error: an unexpected failure.
func internal(format string, args ...any) *cliError {
	return &cliError{category: categoryInternal, err: fmt.Errorf(format, args...)}
}

// exitCodeError signals a non-zero exit without printing anything
// further; the command has already written its own output.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// ExitCode returns the exit code. main checks for this interface to
// distinguish a handled non-zero exit from an error to display.
func (e *exitCodeError) ExitCode() int {
	return e.code
}
