// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// helpStyles holds the styles used by PrintHelp. Styles are bound to the
// writer, so output to a pipe or buffer stays plain text.
type helpStyles struct {
	heading lipgloss.Style
}

func newHelpStyles(w io.Writer) helpStyles {
	renderer := lipgloss.NewRenderer(w)
	if termenv.EnvNoColor() {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return helpStyles{
		heading: renderer.NewStyle().Bold(true),
	}
}
