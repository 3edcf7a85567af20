// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts reading the current time. Frame scheduling stays
// with the UI runtime (tea.Tick); only the time used to compute
// animation progress comes from the Clock.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Since returns the time elapsed since t, measured on this clock.
	Since(t time.Time) time.Duration
}
