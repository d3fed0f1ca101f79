// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

// Conventional shell statuses for a command that could not be started.
const (
	ExitNotExecutable = 126
	ExitNotFound      = 127
)

// ExecFunc is the shape of [Exec]. Callers that need to observe the
// transfer in tests accept an ExecFunc instead of calling Exec directly.
type ExecFunc func(path string, argv []string, env []string) error

// ExecError reports that control could not be transferred to Path. The
// current process is still alive when this is returned.
type ExecError struct {
	Path string
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("exec %s: %v", e.Path, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// ExitCode is 127 when the executable does not exist, 126 when it exists
// but cannot be run, and 1 for anything else.
func (e *ExecError) ExitCode() int {
	switch {
	case errors.Is(e.Err, exec.ErrNotFound), errors.Is(e.Err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(e.Err, fs.ErrPermission), notExecutable(e.Err):
		return ExitNotExecutable
	default:
		return 1
	}
}

// Resolve returns the path that would be executed for name. Names
// without a path separator are searched in PATH; anything else is
// checked in place. A match through a relative PATH entry such as "."
// is accepted, as a shell would.
func Resolve(name string) (string, error) {
	path, err := exec.LookPath(name)
	if errors.Is(err, exec.ErrDot) {
		return path, nil
	}
	if err != nil {
		return "", &ExecError{Path: name, Err: err}
	}
	return path, nil
}
