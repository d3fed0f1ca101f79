// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"github.com/bureau-foundation/cmdbundle/lib/mapping"
)

// TopLevelSpec describes the synthesized command. Metadata fields are
// empty when unset; an empty value is never shown.
type TopLevelSpec struct {
	Name        string
	Description string
	Author      string
	About       string
	Version     string

	// Subcommands holds one entry per distinct mapping name, in the
	// order each name was first declared.
	Subcommands []SubcommandSpec
}

// SubcommandSpec is one synthesized subcommand.
type SubcommandSpec struct {
	Name string

	// Description is the help text, taken from the first mapping
	// declared with Name.
	Description string
}

// NewTopLevelSpec describes the interface for table under name. Names
// that cannot be typed as a subcommand (see
// [mapping.CommandMapping.Invocable]) are left out.
func NewTopLevelSpec(name string, table mapping.Table) *TopLevelSpec {
	spec := &TopLevelSpec{Name: name}
	for _, subcommandName := range table.Names() {
		first, _ := table.Lookup(subcommandName)
		if !first.Invocable() {
			continue
		}
		subcommand := SubcommandSpec{Name: subcommandName}
		if first.HasDescription {
			subcommand.Description = first.Description
		}
		spec.Subcommands = append(spec.Subcommands, subcommand)
	}
	return spec
}

// WithDescription sets the detailed description when value is non-empty.
func (s *TopLevelSpec) WithDescription(value string) *TopLevelSpec {
	if value != "" {
		s.Description = value
	}
	return s
}

// WithAuthor sets the author when value is non-empty.
func (s *TopLevelSpec) WithAuthor(value string) *TopLevelSpec {
	if value != "" {
		s.Author = value
	}
	return s
}

// WithAbout sets the one-line summary when value is non-empty.
func (s *TopLevelSpec) WithAbout(value string) *TopLevelSpec {
	if value != "" {
		s.About = value
	}
	return s
}

// WithVersion sets the version when value is non-empty.
func (s *TopLevelSpec) WithVersion(value string) *TopLevelSpec {
	if value != "" {
		s.Version = value
	}
	return s
}
