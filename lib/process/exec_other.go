// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package process

import (
	"errors"
	"os"
	"os/exec"
)

// Exec runs path with inherited standard streams, waits for it, and
// exits with its status. There is no execve here, so the child gets a
// new PID and signals reach it through this process. Exec only returns
// when the child could not be started, always as an *ExecError.
func Exec(path string, argv []string, env []string) error {
	command := exec.Command(path)
	command.Args = argv
	command.Env = env
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr

	if err := command.Start(); err != nil {
		return &ExecError{Path: path, Err: err}
	}

	err := command.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitFunc(exitErr.ExitCode())
	}
	if err != nil {
		return &ExecError{Path: path, Err: err}
	}
	exitFunc(0)
	return nil
}

func notExecutable(error) bool { return false }
