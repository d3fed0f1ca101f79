// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package process

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Exec replaces the current process with path via execve(2). It only
// returns on failure, always as an *ExecError.
func Exec(path string, argv []string, env []string) error {
	err := unix.Exec(path, argv, env)
	return &ExecError{Path: path, Err: err}
}

func notExecutable(err error) bool {
	return errors.Is(err, unix.ENOEXEC) || errors.Is(err, unix.EISDIR)
}
