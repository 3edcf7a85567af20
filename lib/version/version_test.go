// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"bytes"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestBuildInfo(t *testing.T) {
	build := Build{Version: "1.2.3", Commit: "abc1234", Time: "2026-02-10T00:00:00Z"}
	if got, want := build.Info(), "1.2.3 (abc1234, 2026-02-10T00:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}

	build.Dirty = true
	if got := build.Info(); !strings.Contains(got, "abc1234-dirty") {
		t.Errorf("Info() = %q, want dirty marker", got)
	}
}

func TestApplyBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2026-03-01T12:00:00Z"},
	}}

	var fromToolchain Build
	applyBuildInfo(&fromToolchain, info)
	if fromToolchain.Commit != "0123456789ab" {
		t.Errorf("Commit = %q, want 12-character revision", fromToolchain.Commit)
	}
	if !fromToolchain.Dirty {
		t.Error("Dirty = false, want true from vcs.modified")
	}
	if fromToolchain.Time != "2026-03-01T12:00:00Z" {
		t.Errorf("Time = %q, want vcs.time", fromToolchain.Time)
	}

	fromLinker := Build{Commit: "release", Time: "2026-01-01T00:00:00Z"}
	applyBuildInfo(&fromLinker, info)
	if fromLinker.Commit != "release" || fromLinker.Dirty {
		t.Errorf("linker values overridden: %+v", fromLinker)
	}
	if fromLinker.Time != "2026-01-01T00:00:00Z" {
		t.Errorf("Time = %q, want linker value", fromLinker.Time)
	}
}

func TestResolve_LinkerValues(t *testing.T) {
	savedCommit, savedDirty, savedTime := GitCommit, GitDirty, BuildTime
	t.Cleanup(func() { GitCommit, GitDirty, BuildTime = savedCommit, savedDirty, savedTime })

	GitCommit, GitDirty, BuildTime = "feedbee", "true", "2026-02-10T00:00:00Z"
	build := Resolve()
	if build.Commit != "feedbee" || !build.Dirty || build.Time != "2026-02-10T00:00:00Z" {
		t.Errorf("Resolve() = %+v, want linker values", build)
	}
	if build.Version != Version {
		t.Errorf("Version = %q, want %q", build.Version, Version)
	}
}

func TestPrint(t *testing.T) {
	var output bytes.Buffer
	Print(&output, "secure-prompt")

	got := output.String()
	if !strings.HasPrefix(got, "secure-prompt "+Version+" (") {
		t.Errorf("Print() = %q, want binary name then version", got)
	}
	if !strings.Contains(got, runtime.Version()) {
		t.Errorf("Print() = %q, want Go version", got)
	}
	if !strings.Contains(got, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("Print() = %q, want platform", got)
	}
}
