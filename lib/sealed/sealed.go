// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sealed

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"
	"filippo.io/age/armor"

	"github.com/bureau-foundation/secureinput/lib/secret"
)

// Keypair holds an age x25519 keypair. The private key is stored in a
// secret.Buffer (mmap-backed, locked against swap, excluded from core dumps).
// The public key is a plain string (safe to publish).
//
// The caller must call Close when the keypair is no longer needed.
type Keypair struct {
	// PrivateKey is the secret key in AGE-SECRET-KEY-1... format, stored
	// in mmap memory outside the Go heap. Must never be logged or passed
	// on a command line.
	PrivateKey *secret.Buffer

	// PublicKey is the corresponding public key in age1... format.
	PublicKey string
}

// Close releases the private key memory (zeros, unlocks, unmaps).
// Idempotent.
func (k *Keypair) Close() error {
	if k.PrivateKey != nil {
		return k.PrivateKey.Close()
	}
	return nil
}

// GenerateKeypair generates a new age x25519 keypair. The private key
// is returned in a secret.Buffer.
//
// The caller must call Close on the returned Keypair when done.
func GenerateKeypair() (*Keypair, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generating age keypair: %w", err)
	}

	// The identity's string form stays on the heap until collected;
	// age only exposes keys as strings. The mmap buffer is the durable
	// copy.
	privateKey, err := secret.NewFromBytes([]byte(identity.String()))
	if err != nil {
		return nil, fmt.Errorf("protecting private key: %w", err)
	}

	return &Keypair{
		PrivateKey: privateKey,
		PublicKey:  identity.Recipient().String(),
	}, nil
}

// ParseRecipients validates age public keys (age1... format). Blank
// entries are skipped so values split from a file or a repeated flag
// can be passed through unfiltered. At least one key is required.
func ParseRecipients(keys []string) ([]age.Recipient, error) {
	recipients := make([]age.Recipient, 0, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		recipient, err := age.ParseX25519Recipient(key)
		if err != nil {
			return nil, fmt.Errorf("parsing recipient key %q: %w", key, err)
		}
		recipients = append(recipients, recipient)
	}
	if len(recipients) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}
	return recipients, nil
}

// Seal encrypts plaintext to recipients and writes ASCII-armored
// ciphertext to writer. The plaintext buffer is borrowed and not
// closed.
func Seal(writer io.Writer, plaintext *secret.Buffer, recipients []age.Recipient) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	armorWriter := armor.NewWriter(writer)
	encryptor, err := age.Encrypt(armorWriter, recipients...)
	if err != nil {
		return fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := plaintext.WriteTo(encryptor); err != nil {
		return fmt.Errorf("writing plaintext to age encryptor: %w", err)
	}
	if err := encryptor.Close(); err != nil {
		return fmt.Errorf("finalizing age encryption: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return fmt.Errorf("finalizing armor: %w", err)
	}
	return nil
}

// Open decrypts ciphertext read from reader using privateKey. Both
// armored and binary age files are accepted. Returns the plaintext in
// a secret.Buffer that the caller must Close.
//
// The private key is borrowed (read via String to parse the age
// identity) and is not closed.
func Open(reader io.Reader, privateKey *secret.Buffer) (*secret.Buffer, error) {
	identity, err := age.ParseX25519Identity(privateKey.String())
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}

	buffered := bufio.NewReader(reader)
	var source io.Reader = buffered
	if peeked, _ := buffered.Peek(len(armor.Header)); bytes.Equal(peeked, []byte(armor.Header)) {
		source = armor.NewReader(buffered)
	}

	decryptor, err := age.Decrypt(source, identity)
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}

	plaintext, err := io.ReadAll(decryptor)
	if err != nil {
		secret.Zero(plaintext)
		return nil, fmt.Errorf("reading decrypted plaintext: %w", err)
	}
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("decrypted plaintext is empty")
	}

	// NewFromBytes zeroes the heap copy.
	buffer, err := secret.NewFromBytes(plaintext)
	if err != nil {
		secret.Zero(plaintext)
		return nil, fmt.Errorf("protecting decrypted plaintext: %w", err)
	}
	return buffer, nil
}

// FormatRecipients formats recipients one per line for display or
// logging (no private keys involved).
func FormatRecipients(recipients []age.Recipient) string {
	lines := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		if stringer, ok := recipient.(fmt.Stringer); ok {
			lines = append(lines, stringer.String())
		} else {
			lines = append(lines, fmt.Sprintf("%T", recipient))
		}
	}
	return strings.Join(lines, "\n")
}
