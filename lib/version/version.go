// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Set via -ldflags at release build time. A binary produced by
// "go install" leaves them unset and Resolve falls back to the VCS
// stamps the Go toolchain embeds.
var (
	GitCommit = ""
	GitDirty  = ""
	BuildTime = ""

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// Build describes the running binary.
type Build struct {
	Version  string
	Commit   string
	Dirty    bool
	Time     string
	Go       string
	Platform string
}

// Resolve returns the build description, preferring linker-injected
// values and falling back to the module build info.
func Resolve() Build {
	build := Build{
		Version:  Version,
		Commit:   GitCommit,
		Dirty:    GitDirty == "true",
		Time:     BuildTime,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(&build, info)
	}
	if build.Commit == "" {
		build.Commit = "unknown"
	}
	if build.Time == "" {
		build.Time = "unknown"
	}
	return build
}

// applyBuildInfo fills fields the linker left empty from the settings
// recorded by the toolchain.
func applyBuildInfo(build *Build, info *debug.BuildInfo) {
	linkerCommit := build.Commit != ""
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if !linkerCommit {
				build.Commit = shortRevision(setting.Value)
			}
		case "vcs.modified":
			if !linkerCommit {
				build.Dirty = setting.Value == "true"
			}
		case "vcs.time":
			if build.Time == "" {
				build.Time = setting.Value
			}
		}
	}
}

func shortRevision(revision string) string {
	if len(revision) > 12 {
		return revision[:12]
	}
	return revision
}

// Info returns "<version> (<commit>[-dirty], <time>)".
func (b Build) Info() string {
	dirty := ""
	if b.Dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", b.Version, b.Commit, dirty, b.Time)
}

// Full adds the toolchain and platform lines to Info.
func (b Build) Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s", b.Info(), b.Go, b.Platform)
}

// Print writes the --version output for binary.
func Print(writer io.Writer, binary string) {
	fmt.Fprintf(writer, "%s %s\n", binary, Resolve().Full())
}
