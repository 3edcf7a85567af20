// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// WriteFile writes content to name inside a fresh temporary directory
// and returns the full path. The file is readable only by the owner,
// like a real password file. The directory is removed when the test
// completes.
//
//	path := testutil.WriteFile(t, "prompt.yaml", "title: Token\n")
func WriteFile(t interface {
	Helper()
	TempDir() string
	Fatalf(format string, args ...any)
}, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// ViewLines strips ANSI escape sequences from view and splits it into
// rows.
func ViewLines(view string) []string {
	return strings.Split(ansi.Strip(view), "\n")
}
