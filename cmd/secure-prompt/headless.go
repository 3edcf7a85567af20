// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bureau-foundation/secureinput/lib/secret"
	"github.com/bureau-foundation/secureinput/lib/securefield"
)

// readHeadless reads the value from path ("-" reads the first line of
// stdin) and runs the same validation the interactive field would.
// A rejected value prints its message to stderr and returns an
// exitCodeError with exitValidation. An accepted empty value returns
// a nil buffer.
func readHeadless(path string, stdin io.Reader, stderr io.Writer, mandatory bool, validator securefield.Validator, logger *slog.Logger) (*secret.Buffer, error) {
	var buffer *secret.Buffer
	var err error
	if path == "-" {
		buffer, err = secret.ReadLine(stdin)
	} else {
		buffer, err = secret.ReadFromPath(path)
	}
	if err != nil && !errors.Is(err, secret.ErrEmpty) {
		return nil, validation("reading --password-file %s: %w", path, err)
	}

	value := ""
	if buffer != nil {
		value = buffer.String()
	}
	state := securefield.Validate(value, mandatory, validator)
	logger.Debug("validated headless value", "length", len([]rune(value)), "valid", state.Valid)
	if !state.Valid {
		if buffer != nil {
			buffer.Close()
		}
		message := state.Message
		if message == "" {
			message = "value rejected"
		}
		fmt.Fprintf(stderr, "secure-prompt: %s\n", message)
		return nil, &exitCodeError{code: exitValidation}
	}
	return buffer, nil
}
