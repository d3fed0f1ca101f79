// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies command errors so that callers and the exit
// status can distinguish bad input from failures of the environment
// without parsing error message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// malformed mappings, unknown commands or flags, missing required
	// values. The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist,
	// such as a manifest file.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, parse errors on data the system produced.
	CategoryInternal ErrorCategory = "internal"
)

// ExitUsage is the exit status for validation errors, following the
// convention of argument parsers that reserve 2 for usage mistakes.
const ExitUsage = 2

// ToolError is a categorized error returned by CLI commands.
//
// ToolError wraps an inner error, preserving the full error chain for
// debugging while adding category metadata. Use the category-specific
// constructors (Validation, NotFound, Internal) rather than constructing
// ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is printed after the message, separated by a blank line.
	Hint string
}

// Error returns the underlying error message followed by the hint.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the hint and returns e for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// ExitCode is [ExitUsage] for validation errors and 1 otherwise.
func (e *ToolError) ExitCode() int {
	if e.Category == CategoryValidation {
		return ExitUsage
	}
	return 1
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
