// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds entered secrets (passphrases, tokens, PINs) in
// memory that the Go runtime never sees.
//
// [Buffer] allocates its storage with mmap(MAP_ANONYMOUS), locks it
// into RAM with mlock and excludes it from core dumps with
// madvise(MADV_DONTDUMP). Close zeroes, unlocks and unmaps it.
//
// Constructors:
//
//   - [New] allocates a zero-filled buffer of a given size
//   - [NewFromBytes] copies into protected memory and zeroes the source
//   - [NewFromString] copies a string value (the source cannot be zeroed)
//   - [ReadFromPath] and [ReadLine] read a secret from a file or stream
//
// The secure field hands its accepted value to hosts as a Buffer so the
// long-lived copy of a secret lives outside the heap.
package secret
