// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mapping

// Table is the ordered set of mappings for one invocation. Entries keep
// declaration order and duplicate names are retained.
type Table []CommandMapping

// Lookup returns the first mapping declared with name.
func (t Table) Lookup(name string) (CommandMapping, bool) {
	for _, mapping := range t {
		if mapping.Name == name {
			return mapping, true
		}
	}
	return CommandMapping{}, false
}

// Names returns each distinct name once, in first-declared order.
func (t Table) Names() []string {
	seen := make(map[string]bool, len(t))
	names := make([]string, 0, len(t))
	for _, mapping := range t {
		if seen[mapping.Name] {
			continue
		}
		seen[mapping.Name] = true
		names = append(names, mapping.Name)
	}
	return names
}

// Duplicates returns names declared more than once, in the order their
// second declaration appears. Empty for a table without collisions.
func (t Table) Duplicates() []string {
	seen := make(map[string]int, len(t))
	var duplicates []string
	for _, mapping := range t {
		seen[mapping.Name]++
		if seen[mapping.Name] == 2 {
			duplicates = append(duplicates, mapping.Name)
		}
	}
	return duplicates
}
