// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version describes the running binary for --version output.
//
// Release builds inject [GitCommit], [GitDirty] and [BuildTime] with
// -ldflags -X, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/secureinput/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// Binaries built with "go install" carry no injected values; [Resolve]
// then reads the vcs.revision, vcs.modified and vcs.time settings the
// toolchain records in the build info. Fields that neither source
// provides read "unknown".
//
// [Print] writes "<binary> <Build.Full>" and is what every binary in
// this module calls for --version.
package version
