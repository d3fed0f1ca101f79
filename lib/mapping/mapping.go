// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is matched by every error [Parse] returns.
var ErrMalformed = errors.New("malformed command mapping")

// MalformedError reports a declaration that cannot become a mapping.
type MalformedError struct {
	// Raw is the declaration as the user typed it.
	Raw string

	// Reason is the human-readable explanation.
	Reason string
}

func (e *MalformedError) Error() string { return e.Reason }

// Is makes errors.Is(err, ErrMalformed) hold for every MalformedError.
func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

// CommandMapping binds a subcommand name to the executable it runs.
type CommandMapping struct {
	// Name is the subcommand as typed by the user.
	Name string

	// Path is a filesystem path or a bare executable name resolved
	// through PATH at dispatch time.
	Path string

	// Description is the help text for the subcommand. Only meaningful
	// when HasDescription is true.
	Description string

	// HasDescription is true when the declaration carried a third part,
	// even an empty one.
	HasDescription bool
}

// String renders the mapping back into declaration form.
func (m CommandMapping) String() string {
	if m.HasDescription {
		return m.Name + ":" + m.Path + ":" + m.Description
	}
	return m.Name + ":" + m.Path
}

// Parse converts one name:path[:description] declaration. Only a value
// without any colon is malformed. Empty names or paths parse; see
// [CommandMapping.Invocable] and the dispatch-time lookup for how they
// are treated.
func Parse(raw string) (CommandMapping, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) < 2 {
		return CommandMapping{}, &MalformedError{Raw: raw, Reason: "Mapping must be at least name:path"}
	}

	mapping := CommandMapping{Name: parts[0], Path: parts[1]}
	if len(parts) == 3 {
		mapping.Description = parts[2]
		mapping.HasDescription = true
	}
	return mapping, nil
}

// Invocable reports whether the name can be typed as a subcommand. An
// empty name or one that looks like a flag never reaches the subcommand
// matcher.
func (m CommandMapping) Invocable() bool {
	return m.Name != "" && !strings.HasPrefix(m.Name, "-")
}

// ParseAll parses declarations in order and stops at the first failure.
// On failure no table is returned, so callers never act on a partial set.
func ParseAll(raws []string) (Table, error) {
	table := make(Table, 0, len(raws))
	for _, raw := range raws {
		mapping, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid mapping %q: %w", raw, err)
		}
		table = append(table, mapping)
	}
	return table, nil
}
