// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Executable writes a /bin/sh script called name into dir and returns
// its path. body follows the shebang line and may be empty.
func Executable(t testing.TB, dir, name, body string) string {
	t.Helper()
	return writeScript(t, dir, name, body, 0o755)
}

// NotExecutable writes the same script as [Executable] but without the
// execute bit.
func NotExecutable(t testing.TB, dir, name string) string {
	t.Helper()
	return writeScript(t, dir, name, "", 0o644)
}

// PrependPath puts dir at the front of PATH until the test completes.
func PrependPath(t testing.TB, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func writeScript(t testing.TB, dir, name, body string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), mode); err != nil {
		t.Fatalf("writing script %s: %v", path, err)
	}
	// WriteFile applies the umask; the mode must be exact.
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("setting mode of %s: %v", path, err)
	}
	return path
}
