// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/cmdbundle/lib/mapping"
)

// Manifest describes a bundle: the synthesized command's name and
// metadata plus its command mappings.
type Manifest struct {
	// Name is the synthesized top-level command name.
	Name string `yaml:"name" json:"name"`

	// Description is the detailed help text of the top-level command.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Author is shown in the top-level help.
	Author string `yaml:"author,omitempty" json:"author,omitempty"`

	// About is the one-line summary of the top-level command.
	About string `yaml:"about,omitempty" json:"about,omitempty"`

	// Version, when set, enables --version on the synthesized command.
	// Must be a semantic version.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Commands are the subcommand mappings, in declaration order.
	Commands []CommandEntry `yaml:"commands" json:"commands"`

	// dir is the directory containing the manifest file.
	dir string
}

// CommandEntry is one manifest mapping. It is written either as an
// object with name, path and description keys or as a single
// "name:path[:description]" string. The string form is split before
// variable expansion, so ${VAR:-default} only works in the object form.
type CommandEntry struct {
	Name        string  `yaml:"name" json:"name"`
	Path        string  `yaml:"path" json:"path"`
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`

	// inline is the declaration when the entry was a plain string.
	inline string
}

type commandEntryFields CommandEntry

// UnmarshalYAML accepts both the string and the object form.
func (e *CommandEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&e.inline)
	}
	return node.Decode((*commandEntryFields)(e))
}

// UnmarshalJSON accepts both the string and the object form.
func (e *CommandEntry) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &e.inline)
	}
	return json.Unmarshal(data, (*commandEntryFields)(e))
}

// Mapping converts the entry. The string form is parsed like a
// --command flag. The object form must name both keys.
func (e CommandEntry) Mapping() (mapping.CommandMapping, error) {
	if e.inline != "" {
		return mapping.Parse(e.inline)
	}
	if e.Name == "" || e.Path == "" {
		return mapping.CommandMapping{}, errors.New("command entry needs both name and path")
	}
	result := mapping.CommandMapping{Name: e.Name, Path: e.Path}
	if e.Description != nil {
		result.Description = *e.Description
		result.HasDescription = true
	}
	return result, nil
}

// LoadManifest reads and validates the manifest at path. Files ending in
// .json or .jsonc are parsed as JSON with comments; anything else as
// YAML. Unknown top-level keys are rejected.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		err = decoder.Decode(manifest)
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		err = decoder.Decode(manifest)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if absolute, err := filepath.Abs(filepath.Dir(path)); err == nil {
		manifest.dir = absolute
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return manifest, nil
}

// Validate checks the version and every command entry.
func (m *Manifest) Validate() error {
	var errs []error

	if m.Version != "" {
		if _, err := semver.NewVersion(m.Version); err != nil {
			errs = append(errs, fmt.Errorf("version %q: %w", m.Version, err))
		}
	}

	for index, entry := range m.Commands {
		if _, err := entry.Mapping(); err != nil {
			errs = append(errs, fmt.Errorf("commands[%d]: %w", index, err))
		}
	}

	return errors.Join(errs...)
}

// Table returns the manifest's mappings in declaration order with
// variables in each path expanded.
func (m *Manifest) Table() (mapping.Table, error) {
	vars := map[string]string{
		"MANIFEST_DIR": m.dir,
		"HOME":         os.Getenv("HOME"),
	}

	table := make(mapping.Table, 0, len(m.Commands))
	for index, entry := range m.Commands {
		command, err := entry.Mapping()
		if err != nil {
			return nil, fmt.Errorf("commands[%d]: %w", index, err)
		}
		command.Path = expandVars(command.Path, vars)
		table = append(table, command)
	}
	return table, nil
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}
