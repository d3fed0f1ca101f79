// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
)

// Linker-set build metadata. Release builds pass, for example:
//
//	-ldflags "-X github.com/bureau-foundation/cmdbundle/lib/version.Version=1.0.0"
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	GitDirty  = "false"
	BuildTime = "unknown"
)

// Info is the one-line form: "<version> (<commit>[-dirty], <build time>)".
func Info() string {
	commit := GitCommit
	if GitDirty == "true" {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s, %s)", Version, commit, BuildTime)
}

// Full is [Info] plus the toolchain and platform the binary was built
// for. cmdbundle prints it for its own --version.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
