// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// isTerminal is swapped out in tests.
var isTerminal = term.IsTerminal

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer for output written to w. Color stays off
// when enabled is false, NO_COLOR is set, TERM is empty or "dumb", or w is
// not a terminal.
func NewColorizer(w io.Writer, enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	termEnv := os.Getenv("TERM")
	if termEnv == "" || termEnv == "dumb" {
		return Colorizer{}
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !isTerminal(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Wrap(text string, attrs ...color.Attribute) string {
	if !c.Enabled || len(attrs) == 0 {
		return text
	}
	col := color.New(attrs...)
	// fatih/color decides on its own from os.Stdout; the Colorizer already
	// made that decision for the real writer.
	col.EnableColor()
	return col.Sprint(text)
}

func (c Colorizer) Error(text string) string {
	return c.Wrap(text, color.FgRed, color.Bold)
}

func (c Colorizer) Dim(text string) string {
	return c.Wrap(text, color.FgHiBlack)
}
