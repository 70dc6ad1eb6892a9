// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads plotting configuration from TOML.
//
// A configuration file overlays the defaults, so it need only name
// the settings it changes:
//
//	[style]
//	colormap = "nu_r"
//	palette = "ucb"
//
//	[histogram]
//	num_points = 10
//	title = "Quiz 1"
//
//	[[histogram.letters]]
//	name = "A"
//	min = 9
//	...
//
//	[[colormap]]
//	name = "gold"
//	colors = ["white", "#f4b516"]
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/aspenlab/aspen/colormap"
	"github.com/aspenlab/aspen/palettes"
	"github.com/aspenlab/aspen/plot"
)

// ErrNoConfig is returned by Load, along with the defaults, when no
// configuration file exists.
var ErrNoConfig = errors.New("no config file found; using defaults")

type Config struct {
	Style       plot.Style             `toml:"style"`
	Histogram   plot.HistOptions       `toml:"histogram"`
	Corrections plot.CorrectionOptions `toml:"corrections"`
	Scatter     plot.ScatterOptions    `toml:"scatter"`

	// Colormaps are additional colormaps to register.
	Colormaps []Colormap `toml:"colormap"`
}

// A Colormap defines a colormap in a configuration file. Colors are
// color specifications, or color names from Palette if it is set.
type Colormap struct {
	Name    string   `toml:"name"`
	Palette string   `toml:"palette"`
	Colors  []string `toml:"colors"`
	N       int      `toml:"n"`
	Left    string   `toml:"left"`
	Right   string   `toml:"right"`

	// Reversed also registers the reversed colormap as Name_r.
	Reversed bool `toml:"reversed"`
}

const defaultPointSize = 36

func Defaults() *Config {
	return &Config{
		Style:       plot.DefaultStyle(),
		Histogram:   plot.DefaultHistOptions(),
		Corrections: plot.DefaultCorrectionOptions(),
		Scatter:     plot.ScatterOptions{PointSize: defaultPointSize},
	}
}

// Load loads configuration from path, or from the first file on the
// search path if path is "". If there is no file, it returns the
// defaults and ErrNoConfig. Values that are missing or out of range
// are replaced by defaults, but an invalid grade scale is an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	chosen := path
	if chosen == "" {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err == nil {
				chosen = p
				break
			}
		}
	}
	if chosen == "" {
		return cfg, ErrNoConfig
	}
	data, err := os.ReadFile(chosen)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(string(data))
}

// Parse parses TOML configuration data over the defaults.
func Parse(data string) (*Config, error) {
	cfg := Defaults()
	// Decoding into a non-empty slice reuses its elements, so letters
	// start empty and normalize fills in the defaults.
	cfg.Histogram.Letters = nil
	cfg.Corrections.Letters = nil
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return Defaults(), fmt.Errorf("parse config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Defaults(), fmt.Errorf("parse config: unknown key %s", undec[0])
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Defaults(), err
	}
	return cfg, nil
}

func searchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "aspen", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "aspen", "config.toml"))
	}
	return out
}

// normalize replaces missing and out-of-range values with defaults.
func (c *Config) normalize() {
	c.normalizeStyle()
	c.normalizeHistogram()
	c.normalizeCorrections()
	if c.Scatter.PointSize <= 0 {
		c.Scatter.PointSize = defaultPointSize
	}
}

func (c *Config) normalizeStyle() {
	s, def := &c.Style, plot.DefaultStyle()
	positive(&s.FigWidth, def.FigWidth)
	positive(&s.FigHeight, def.FigHeight)
	positive(&s.DPI, def.DPI)
	positive(&s.FontSize, def.FontSize)
	positive(&s.LabelSize, def.LabelSize)
	positive(&s.TitleSize, def.TitleSize)
	positive(&s.TickSize, def.TickSize)
	positive(&s.LineWidth, def.LineWidth)
	positive(&s.AxesWidth, def.AxesWidth)
	positive(&s.TickLen, def.TickLen)
	if s.GridAlpha < 0 || s.GridAlpha > 1 {
		s.GridAlpha = def.GridAlpha
	}
	nonEmpty(&s.Font, def.Font)
	nonEmpty(&s.Colormap, def.Colormap)
	nonEmpty(&s.Palette, def.Palette)
}

func (c *Config) normalizeHistogram() {
	h, def := &c.Histogram, plot.DefaultHistOptions()
	if h.YPadding == 0 {
		h.YPadding = def.YPadding
	}
	positive(&h.LetterFontSize, def.LetterFontSize)
	nonEmpty(&h.CumulativeColor, def.CumulativeColor)
	if len(h.Letters) == 0 {
		h.Letters = def.Letters
	}
}

func (c *Config) normalizeCorrections() {
	k, def := &c.Corrections, plot.DefaultCorrectionOptions()
	if k.Offset < 0 {
		k.Offset = def.Offset
	}
	if k.ShadeAlpha <= 0 || k.ShadeAlpha > 1 {
		k.ShadeAlpha = def.ShadeAlpha
	}
	if len(k.Letters) == 0 {
		k.Letters = def.Letters
	}
}

func (c *Config) validate() error {
	if err := c.Histogram.Letters.Validate(); err != nil {
		return fmt.Errorf("histogram letters: %w", err)
	}
	if err := c.Corrections.Letters.Validate(); err != nil {
		return fmt.Errorf("corrections letters: %w", err)
	}
	if _, err := colormap.Resolve(c.Histogram.CumulativeColor); err != nil {
		return fmt.Errorf("histogram cumulative_color: %w", err)
	}
	return nil
}

// Register builds c's colormaps and registers them in reg.
func (c *Config) Register(reg *colormap.Registry) error {
	for _, m := range c.Colormaps {
		cm, err := m.Build()
		if err != nil {
			return err
		}
		if err := reg.Register(cm.Name, cm); err != nil {
			return err
		}
		if m.Reversed {
			r := cm.Reversed()
			if err := reg.Register(r.Name, r); err != nil {
				return err
			}
		}
	}
	return nil
}

// Build builds the colormap m defines.
func (m Colormap) Build() (*colormap.Colormap, error) {
	if m.Name == "" {
		return nil, fmt.Errorf("config colormap: %w: missing name", colormap.ErrInvalidInput)
	}
	colors := m.Colors
	if m.Palette != "" {
		pal, ok := palettes.Lookup(m.Palette)
		if !ok {
			return nil, fmt.Errorf("colormap %s: unknown palette %q", m.Name, m.Palette)
		}
		var err error
		if colors, err = pal.Specs(m.Colors...); err != nil {
			return nil, fmt.Errorf("colormap %s: %w", m.Name, err)
		}
	}
	cm, err := colormap.Build(colors, colormap.Options{N: m.N, Left: m.Left, Right: m.Right, Name: m.Name})
	if err != nil {
		return nil, fmt.Errorf("colormap %s: %w", m.Name, err)
	}
	return cm, nil
}

func positive(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}

func nonEmpty(v *string, def string) {
	if *v == "" {
		*v = def
	}
}
