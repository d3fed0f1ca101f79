// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Settings holds the environment-provided configuration.
type Settings struct {
	// Manifest is the default manifest path, used when --manifest is
	// not given.
	Manifest string `env:"CMDBUNDLE_MANIFEST"`

	// LogLevel is the minimum level of the command logger. Dispatch
	// decisions are logged at debug.
	LogLevel slog.Level `env:"CMDBUNDLE_LOG_LEVEL" envDefault:"warn"`
}

// LoadSettings parses [Settings] from the process environment.
func LoadSettings() (Settings, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("environment parse failed: %w", err)
	}
	return settings, nil
}
