// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework cmdbundle uses twice:
// once for its own invocation surface and once for the interface it
// synthesizes from command mappings at runtime.
//
// The central type is [Command], which represents a named command with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Trees are plain data, so they can be assembled from
// values only known at runtime. [Command.Resolve] classifies an argument
// vector against a tree without side effects; [Command.Execute] resolves
// and then acts: it prints help or version output, or calls the matched
// command's Run.
//
// A command marked [Command.PassThrough] takes no flags of its own.
// Every token after its name is handed to Run untouched, which is how
// synthesized subcommands forward arguments to the program they exec.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Errors returned by the framework are [ToolError] values in the
// validation category, which exit with status 2.
package cli
