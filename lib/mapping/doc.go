// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mapping parses the name:path[:description] declarations that
// bind a synthesized subcommand to an executable.
//
// [Parse] turns one declaration into a [CommandMapping]. Splitting is
// bounded: the value is cut on ":" at most twice, so a description may
// itself contain colons but a name or path may not. [ParseAll] parses a
// repeated option into a [Table], preserving declaration order and
// keeping duplicate names. [Table.Lookup] resolves a name to the first
// entry declared with it.
//
// This package depends on no other cmdbundle packages.
package mapping
