// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source so that animated
// components can be tested frame by frame.
//
// Components keep a Clock field and read the time through it:
//
//	type Field struct {
//	    clock clock.Clock
//	    // ...
//	}
//
// Production code uses Real(). Tests use Fake() and move time forward
// explicitly with Advance, then deliver the frame message the
// component scheduled:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	field := securefield.New("Passphrase", securefield.Options{Clock: c})
//	c.Advance(100 * time.Millisecond)
package clock
