// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.log")
	logger, closeLog, err := newLogger(path, true, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	logger.Debug("validated field", "length", 3)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"validated field"`) {
		t.Errorf("log file = %q, want a JSON debug record", data)
	}
}

func TestNewLoggerInteractiveDiscards(t *testing.T) {
	var stderr bytes.Buffer
	logger, closeLog, err := newLogger("", true, &stderr)
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	defer closeLog()

	logger.Error("should not appear")
	if stderr.Len() != 0 {
		t.Errorf("interactive logger wrote to stderr: %q", stderr.String())
	}
}

func TestNewLoggerHeadlessJSONWhenPiped(t *testing.T) {
	var stderr bytes.Buffer
	logger, closeLog, err := newLogger("", false, &stderr)
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	defer closeLog()

	logger.Info("below threshold")
	logger.Warn("slow validator", "elapsed_ms", 900)
	output := stderr.String()
	if strings.Contains(output, "below threshold") {
		t.Error("info records should be filtered in headless mode")
	}
	if !strings.Contains(output, `"msg":"slow validator"`) {
		t.Errorf("stderr = %q, want a JSON warning", output)
	}
}

func TestNewLoggerBadPath(t *testing.T) {
	_, closeLog, err := newLogger(filepath.Join(t.TempDir(), "missing", "dir", "log"), false, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for an unwritable path")
	}
	closeLog()
}
