// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"build", "biuld", 2},
		{"deploy", "deplo", 1},
	}

	for _, test := range tests {
		t.Run(test.a+"->"+test.b, func(t *testing.T) {
			got := levenshtein(test.a, test.b)
			if got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"abc", "abd"},
		{"hello", "helo"},
		{"build", "biuld"},
	}

	for _, pair := range pairs {
		forward := levenshtein(pair[0], pair[1])
		reverse := levenshtein(pair[1], pair[0])
		if forward != reverse {
			t.Errorf("levenshtein(%q, %q) = %d, but reverse = %d",
				pair[0], pair[1], forward, reverse)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "build"},
		{Name: "deploy"},
		{Name: "lint"},
		{Name: "format"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"biuld", "build"},    // transposition
		{"deplyo", "deploy"},  // transposition
		{"lnt", "lint"},       // missing letter
		{"formatt", "format"}, // extra letter
		{"nonexistent", ""},   // nothing close
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := suggestCommand(test.input, commands); got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	newFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("cmdbundle", pflag.ContinueOnError)
		flagSet.StringP("name", "n", "", "")
		flagSet.StringP("about", "b", "", "")
		flagSet.StringArrayP("command", "c", nil, "")
		return flagSet
	}

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--nmae", "tool"}, "--name"},
		{[]string{"--name", "tool", "--commnd=x:y"}, "--command"},
		{[]string{"--abuot"}, "--about"},
		{[]string{"--zzzzzzzz"}, ""},
		{[]string{"--", "--nmae"}, ""},
	}

	for _, test := range tests {
		if got := suggestFlag(test.args, newFlagSet()); got != test.want {
			t.Errorf("suggestFlag(%q) = %q, want %q", test.args, got, test.want)
		}
	}
}
