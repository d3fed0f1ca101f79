// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports which cmdbundle build is running. The values
// are injected with -ldflags -X; unset, they read "0.1.0-dev" and
// "unknown".
package version
