// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// newLogger builds the process logger.
//
// With logOutput set, JSON records at debug level go to that file in
// every mode. Otherwise an interactive prompt discards logs, since
// stderr belongs to the UI. A headless run logs warnings to stderr:
// text when stderr is a terminal, JSON when it is piped.
//
// The returned closer releases the log file and is never nil.
func newLogger(logOutput string, interactive bool, stderr io.Writer) (*slog.Logger, func(), error) {
	if logOutput != "" {
		file, err := os.OpenFile(logOutput, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			return nil, func() {}, err
		}
		handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
		return slog.New(handler), func() { file.Close() }, nil
	}

	if interactive {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	var handler slog.Handler
	options := &slog.HandlerOptions{Level: slog.LevelWarn}
	if isTerminal(stderr) {
		handler = slog.NewTextHandler(stderr, options)
	} else {
		handler = slog.NewJSONHandler(stderr, options)
	}
	return slog.New(handler), func() {}, nil
}

// isTerminal reports whether writer is a terminal device.
func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
