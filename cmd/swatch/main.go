// Swatch - colour conversions, palettes and contrast from a single hex colour
//
// Swatch converts an sRGB hex colour into RGB, HSL and LCH, derives harmony
// palettes and tint/shade/tone ramps, and reports WCAG contrast ratios.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
