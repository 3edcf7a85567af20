// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"filippo.io/age"

	"github.com/bureau-foundation/secureinput/lib/sealed"
	"github.com/bureau-foundation/secureinput/lib/secret"
)

// writeSecret writes the accepted value to writer: armored age
// ciphertext when recipients are given, otherwise the raw value and a
// newline. A nil value means the field was accepted empty; it prints
// an empty line and cannot be encrypted.
func writeSecret(writer io.Writer, value *secret.Buffer, recipients []age.Recipient) error {
	if len(recipients) > 0 {
		if value == nil {
			return validation("cannot encrypt an empty value").
				withHint("Mark the field mandatory (--mandatory) when encrypting to recipients.")
		}
		if err := sealed.Seal(writer, value, recipients); err != nil {
			return internal("encrypting value: %w", err)
		}
		return nil
	}

	if value != nil {
		if _, err := value.WriteTo(writer); err != nil {
			return internal("writing value: %w", err)
		}
	}
	if _, err := fmt.Fprintln(writer); err != nil {
		return internal("writing value: %w", err)
	}
	return nil
}
