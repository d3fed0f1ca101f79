// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"os"
)

// exitFunc terminates the process. Tests override it.
var exitFunc = os.Exit

// ExitCoder is implemented by errors that carry their own exit status.
type ExitCoder interface {
	ExitCode() int
}

// ExitCode returns the status a process should exit with for err: 0 for
// nil, the code of the first [ExitCoder] in the chain, or 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// Fatal writes "error: err" to stderr and exits with [ExitCode]. This is
// the standard entrypoint error handler. Use it in main() for errors from
// run() where the structured logger may not be initialized.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	exitFunc(ExitCode(err))
}
