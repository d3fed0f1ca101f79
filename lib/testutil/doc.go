// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for cmdbundle packages.
//
// [Executable] writes a small shell script with the execute bit set, so
// tests can declare mappings that point at a real file without relying
// on what the host has installed. [NotExecutable] writes the same kind
// of file without the execute bit. [PrependPath] puts a directory first
// on PATH for the duration of a test, for mappings that name a bare
// program.
//
// [UniqueID] generates monotonically increasing identifiers for test
// disambiguation, such as program names that must not collide with
// anything already on PATH.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no cmdbundle-internal dependencies.
package testutil
