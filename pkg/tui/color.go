// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
)

// Attributes used when rendering parse results.
var (
	ColorHeader = []color.Attribute{color.FgHiBlack}
	ColorPaired = []color.Attribute{color.FgGreen}
	ColorSingle = []color.Attribute{color.FgYellow}
	ColorError  = []color.Attribute{color.FgRed, color.Bold}
)

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns an enabled Colorizer if enabled is set and the
// environment allows color (NO_COLOR unset, TERM set and not "dumb").
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Wrap(attrs []color.Attribute, text string) string {
	if !c.Enabled || len(attrs) == 0 {
		return text
	}
	cc := color.New(attrs...)
	// The package-level NoColor looks at stdout; the caller already decided.
	cc.EnableColor()
	return cc.Sprint(text)
}
