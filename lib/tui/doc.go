// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface pieces for
// Bureau's input components. Built on bubbletea (Elm architecture)
// and lipgloss, it covers the concerns every component repeats: the
// color theme and its light/dark selection, eased transitions for
// animated chrome, color blending, and ANSI-aware line splicing for
// overlaid affordances.
//
// Components (the secure field, host programs) import this package
// for consistent look and behavior. Each component owns its own state
// and rendering.
package tui
