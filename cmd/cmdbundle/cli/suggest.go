// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// maxSuggestDistance is the largest edit distance still offered as a
// "did you mean" suggestion.
const maxSuggestDistance = 3

// closest returns the candidate nearest to name within
// maxSuggestDistance, preferring the earliest on ties, or "".
func closest(name string, candidates []string) string {
	best, bestDistance := "", maxSuggestDistance+1
	for _, candidate := range candidates {
		if distance := levenshtein(name, candidate); distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best
}

// suggestCommand returns the subcommand name nearest to unknown, or "".
func suggestCommand(unknown string, commands []*Command) string {
	names := make([]string, 0, len(commands))
	for _, command := range commands {
		names = append(names, command.Name)
	}
	return closest(unknown, names)
}

// suggestFlag finds the first long flag in args that flagSet does not
// define and returns the nearest defined one as "--name", or "". Tokens
// after "--" are not flags and are ignored.
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	for _, arg := range args {
		if arg == "--" {
			return ""
		}
		name, isLong := strings.CutPrefix(arg, "--")
		if !isLong {
			continue
		}
		name, _, _ = strings.Cut(name, "=")
		if flagSet.Lookup(name) != nil {
			continue
		}

		var defined []string
		flagSet.VisitAll(func(flag *pflag.Flag) {
			defined = append(defined, flag.Name)
		})
		if suggestion := closest(name, defined); suggestion != "" {
			return "--" + suggestion
		}
		return ""
	}
	return ""
}

// levenshtein is the edit distance between a and b counted in bytes,
// with unit cost for insertion, deletion, and substitution.
func levenshtein(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(b); j++ {
		diagonal := row[0]
		row[0] = j
		for i := 1; i <= len(a); i++ {
			above := row[i]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[i] = min(above+1, row[i-1]+1, diagonal+cost)
			diagonal = above
		}
	}
	return row[len(a)]
}
