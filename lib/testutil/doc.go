// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [WriteFile] creates a file with fixed content in a per-test
// temporary directory and returns its path, for config files and
// password files read by the code under test.
//
// [ViewLines] strips ANSI styling from a rendered bubbletea view and
// splits it into rows, so layout assertions can compare plain text and
// column positions regardless of the color profile the test runs
// under.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
