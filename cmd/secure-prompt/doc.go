// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// secure-prompt asks for a secret in a terminal UI and prints the
// accepted value to stdout, in the manner of an askpass helper.
//
// The prompt is a single [securefield.Field], optionally followed by a
// confirmation field, drawn on stderr in the alternate screen. Input
// is read from the controlling terminal, so stdin and stdout stay free
// for pipes. Enter submits once every field validates; Esc cancels
// with exit code 130.
//
// Field behavior comes from flags, a YAML or JSONC config file
// (--config or SECURE_PROMPT_CONFIG), or both, with flags winning.
// The same validation rules run in headless mode (--password-file),
// where a rejected value exits with code 2 and its message on stderr.
//
// With one or more --recipient age public keys, the value is written
// as ASCII-armored age ciphertext. The value otherwise leaves the
// process only through stdout; it is never logged.
//
// [securefield.Field]: github.com/bureau-foundation/secureinput/lib/securefield
package main
