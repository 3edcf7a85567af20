// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// TransitionDuration is how long an animated property takes to move
// between its endpoints. Matches the platform default animation.
const TransitionDuration = 350 * time.Millisecond

// FrameInterval is the re-render interval while a transition runs.
// ~30fps is smooth enough for color changes in a terminal.
const FrameInterval = time.Second / 30

// Transition animates a scalar position between 0 and 1 with an
// ease-in-out curve. Retargeting mid-flight starts the new leg from
// the current position, so rapid changes never jump.
//
// The zero value rests at position 0.
type Transition struct {
	from   float64
	to     float64
	start  time.Time
	moving bool
}

// NewTransition returns a transition resting at position (clamped to
// [0, 1]).
func NewTransition(position float64) Transition {
	position = clampUnit(position)
	return Transition{from: position, to: position}
}

// Retarget starts moving toward target (clamped to [0, 1]) at now.
// Returns false if the transition already rests at or heads toward
// target, in which case nothing changes.
func (transition *Transition) Retarget(target float64, now time.Time) bool {
	target = clampUnit(target)
	if target == transition.to {
		return false
	}
	transition.from = transition.Position(now)
	transition.to = target
	transition.start = now
	transition.moving = true
	return true
}

// Target returns the position the transition is heading toward.
func (transition *Transition) Target() float64 {
	return transition.to
}

// Position returns the eased position at now.
func (transition *Transition) Position(now time.Time) float64 {
	if !transition.moving {
		return transition.to
	}
	elapsed := now.Sub(transition.start)
	if elapsed >= TransitionDuration {
		return transition.to
	}
	if elapsed <= 0 {
		return transition.from
	}
	progress := EaseInOut(float64(elapsed) / float64(TransitionDuration))
	return transition.from + (transition.to-transition.from)*progress
}

// Animating reports whether frames are still needed at now. Settles
// the transition once it has reached its target.
func (transition *Transition) Animating(now time.Time) bool {
	if !transition.moving {
		return false
	}
	if now.Sub(transition.start) >= TransitionDuration {
		transition.moving = false
		transition.from = transition.to
		return false
	}
	return true
}

// EaseInOut maps linear progress t in [0, 1] onto a smoothstep curve:
// slow start, fast middle, slow finish.
func EaseInOut(t float64) float64 {
	t = clampUnit(t)
	return t * t * (3 - 2*t)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
