// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package securefield

import (
	"crypto/rand"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/zeebo/blake3"
)

// fingerprintSwatches is how many colors a fingerprint shows. Three
// 24-bit colors are easy to remember and reveal nothing useful.
const fingerprintSwatches = 3

// fingerprintKey is a per-field random BLAKE3 key. Keying the hash
// means the same secret produces different colors in different
// sessions, so a screenshot of the swatches cannot be matched against
// a dictionary.
type fingerprintKey [32]byte

func newFingerprintKey() fingerprintKey {
	var key fingerprintKey
	rand.Read(key[:])
	return key
}

// colors derives the swatch colors for value. Empty values have no
// fingerprint.
func (key fingerprintKey) colors(value string) []lipgloss.Color {
	if value == "" {
		return nil
	}
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		// NewKeyed only fails for keys that are not 32 bytes.
		panic(fmt.Sprintf("securefield: fingerprint key: %v", err))
	}
	hasher.Write([]byte(value))
	sum := hasher.Sum(nil)

	colors := make([]lipgloss.Color, fingerprintSwatches)
	for index := range colors {
		offset := index * 3
		colors[index] = lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", sum[offset], sum[offset+1], sum[offset+2]))
	}
	return colors
}
