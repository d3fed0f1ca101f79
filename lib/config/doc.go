// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides the two configuration sources cmdbundle reads
// besides its own flags.
//
// [LoadSettings] reads process settings from the environment
// (CMDBUNDLE_MANIFEST, CMDBUNDLE_LOG_LEVEL). [LoadManifest] reads a
// bundle manifest: the same name, metadata and command mappings the
// flags carry, written down once in a YAML or JSONC file. The manifest
// is loaded from exactly the path given. There is no search path and no
// ~/.config discovery.
//
// Variable expansion is performed on command paths after loading:
// ${MANIFEST_DIR}, ${HOME} and ${VAR:-default} patterns are expanded.
package config
