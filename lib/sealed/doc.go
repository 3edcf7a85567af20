// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sealed encrypts an accepted secret to age recipients so it
// can leave the prompt without ever being written in the clear. It
// wraps filippo.io/age for the operations the prompt needs: parse
// x25519 recipients, encrypt a [secret.Buffer] to them with ASCII
// armor, and decrypt armored or binary ciphertext with a private key.
//
// Private keys and decrypted plaintext are returned as [secret.Buffer]
// values backed by mmap memory outside the Go heap (locked against
// swap, excluded from core dumps, zeroed on Close).
//
// Key exports:
//
//   - [GenerateKeypair] -- new age x25519 keypair in a secret.Buffer
//   - [ParseRecipients] -- validate age1... public keys
//   - [Seal] -- encrypt a secret.Buffer to recipients, armored
//   - [Open] -- decrypt with a secret.Buffer key
//
// Depends on lib/secret for secure memory allocation.
package sealed
