// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot renders grade histograms, correction charts, scatter
// plots, and colorbars.
//
// Renderers take their colormap and Style explicitly. There is no
// package-level plotting state: the equivalent of installing global
// defaults is Style.Install, which records a default colormap in a
// caller-owned colormap.Registry and a color cycle in the Style.
package plot

import (
	"fmt"

	"github.com/aspenlab/aspen/colormap"
)

// Style holds figure-wide rendering defaults. Sizes are in points
// unless noted and are converted to pixels at DPI.
type Style struct {
	FigWidth  float64 `toml:"fig_width"`  // inches
	FigHeight float64 `toml:"fig_height"` // inches
	DPI       float64 `toml:"dpi"`

	Font      string  `toml:"font"`
	FontSize  float64 `toml:"font_size"`
	LabelSize float64 `toml:"label_size"`
	TitleSize float64 `toml:"title_size"`
	TickSize  float64 `toml:"tick_size"`

	LineWidth float64 `toml:"line_width"`
	AxesWidth float64 `toml:"axes_width"`
	TickLen   float64 `toml:"tick_length"`
	GridAlpha float64 `toml:"grid_alpha"`

	// Colormap and Palette name the default colormap and the
	// palette whose colors make up the default color cycle.
	Colormap string `toml:"colormap"`
	Palette  string `toml:"palette"`

	cycle *colormap.Cycle
}

// DefaultStyle returns the default Style: a 7.5x5 inch figure at 150
// DPI with heavier axes and ticks than usual.
func DefaultStyle() Style {
	return Style{
		FigWidth:  7.5,
		FigHeight: 5,
		DPI:       150,
		Font:      "sans-serif",
		FontSize:  14,
		LabelSize: 12,
		TitleSize: 13,
		TickSize:  12,
		LineWidth: 2,
		AxesWidth: 1.2,
		TickLen:   8,
		GridAlpha: 0.4,
		Colormap:  "smc",
		Palette:   "smc",
	}
}

// Size returns the figure size in pixels.
func (s *Style) Size() (w, h int) {
	return int(s.FigWidth * s.DPI), int(s.FigHeight * s.DPI)
}

// px converts a size in points to pixels.
func (s *Style) px(pt float64) float64 {
	return pt * s.DPI / 72
}

// Install makes the colormap registered as s.Colormap the default in
// reg and sets s's color cycle to the colors of pal. It also records
// pal's name in s.Palette.
func (s *Style) Install(reg *colormap.Registry, pal *colormap.Palette) error {
	if err := reg.SetDefault(s.Colormap); err != nil {
		return fmt.Errorf("installing style: %w", err)
	}
	s.Palette = pal.Name()
	s.cycle = pal.Cycle()
	return nil
}

// Cycle returns the installed color cycle, restarted at its first
// color. If no cycle is installed, it returns a black-only cycle.
func (s *Style) Cycle() *colormap.Cycle {
	if s.cycle == nil {
		c, _ := colormap.NewCycle(colormap.Opaque(0, 0, 0))
		return c
	}
	s.cycle.Reset()
	return s.cycle
}
