// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Cmdbundle turns a list of name:path[:description] mappings into a
// command-line tool at runtime. It synthesizes one subcommand per
// mapping, matches the arguments after "--" against them, and execs the
// mapped program with the remaining arguments, so the program replaces
// cmdbundle and inherits its stdio, process group, and exit status.
//
// Mappings come from repeated --command flags, a YAML or JSONC manifest
// (--manifest or CMDBUNDLE_MANIFEST), or both. Manifest commands are
// declared first. Flags override manifest metadata.
//
//	cmdbundle --name tool \
//	    --command build:/usr/bin/make:"Build everything" \
//	    --command lint:golangci-lint \
//	    -- build -j8
package main
