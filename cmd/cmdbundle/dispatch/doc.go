// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package dispatch synthesizes a command-line interface from a mapping
// table and transfers control to the executable behind the subcommand
// the user picked.
//
// A [TopLevelSpec] is the data form of the synthesized interface: the
// top-level name, its optional metadata, and one subcommand per distinct
// mapping name in declaration order. [Dispatcher.Grammar] turns that description
// into a [cli.Command] tree whose subcommands are pass-through, so every
// token after the subcommand name reaches the target program untouched.
//
// [Dispatcher.Run] matches the trailing arguments against that tree.
// Help and version requests print and return nil. No subcommand returns
// nil having done nothing. A matched subcommand resolves its mapping
// (first declaration wins) and execs it; on success Run never returns.
package dispatch
