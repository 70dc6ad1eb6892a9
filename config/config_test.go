// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aspenlab/aspen/colormap"
	"github.com/aspenlab/aspen/grades"
	"github.com/aspenlab/aspen/plot"
)

const sample = `
[style]
dpi = 100
colormap = "nu_r"
palette = "ucb"

[histogram]
num_points = 10
title = "Quiz 1"
show_mode = false
ypadding = 0

[[histogram.letters]]
name = "A"
min = 9

[[histogram.letters]]
name = "B"
min = 8

[[histogram.letters]]
name = "F"
min = 0

[corrections]
questions = 20
frac = 0.25
shade_alpha = 2

[[colormap]]
name = "gold"
colors = ["white", "#f4b516"]
n = 16
reversed = true

[[colormap]]
name = "berkeley"
palette = "ucb"
colors = ["blue", "gold"]
`

func TestParse(t *testing.T) {
	cfg, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	def := Defaults()

	if cfg.Style.DPI != 100 || cfg.Style.Colormap != "nu_r" || cfg.Style.Palette != "ucb" {
		t.Errorf("style = %+v", cfg.Style)
	}
	if cfg.Style.FontSize != def.Style.FontSize {
		t.Errorf("font size %g; want default %g", cfg.Style.FontSize, def.Style.FontSize)
	}

	h := cfg.Histogram
	if h.NumPoints != 10 || h.Title != "Quiz 1" || h.ShowMode || !h.ShowMean {
		t.Errorf("histogram = %+v", h)
	}
	if h.YPadding != def.Histogram.YPadding {
		t.Errorf("ypadding %g; want default %g", h.YPadding, def.Histogram.YPadding)
	}
	want := grades.Scale{{Name: "A", Min: 9}, {Name: "B", Min: 8}, {Name: "F", Min: 0}}
	if !reflect.DeepEqual(h.Letters, want) {
		t.Errorf("letters = %v; want %v", h.Letters, want)
	}
	// Decoding must not disturb the package default.
	if len(grades.DefaultScale) != 5 || grades.DefaultScale[1].Name != "B" || grades.DefaultScale[2].Name != "C" {
		t.Errorf("grades.DefaultScale modified: %v", grades.DefaultScale)
	}

	k := cfg.Corrections
	if k.Questions != 20 || k.Frac != 0.25 {
		t.Errorf("corrections = %+v", k)
	}
	if k.ShadeAlpha != def.Corrections.ShadeAlpha {
		t.Errorf("shade alpha %g; want default %g", k.ShadeAlpha, def.Corrections.ShadeAlpha)
	}
	if cfg.Scatter.PointSize != defaultPointSize {
		t.Errorf("point size %g; want %d", cfg.Scatter.PointSize, defaultPointSize)
	}
}

func TestParseLettersOmittedFields(t *testing.T) {
	cfg, err := Parse(`
[[histogram.letters]]
name = "P"
min = 5

[[histogram.letters]]
name = "F"

[[corrections.letters]]
name = "P"
min = 6

[[corrections.letters]]
name = "F"
`)
	if err != nil {
		t.Fatal(err)
	}
	want := grades.Scale{{Name: "P", Min: 5}, {Name: "F", Min: 0}}
	if !reflect.DeepEqual(cfg.Histogram.Letters, want) {
		t.Errorf("histogram letters = %v; want %v", cfg.Histogram.Letters, want)
	}
	want = grades.Scale{{Name: "P", Min: 6}, {Name: "F", Min: 0}}
	if !reflect.DeepEqual(cfg.Corrections.Letters, want) {
		t.Errorf("corrections letters = %v; want %v", cfg.Corrections.Letters, want)
	}

	cfg, err = Parse("[histogram]\ntitle = \"Quiz\"\n")
	if err != nil {
		t.Fatal(err)
	}
	if def := Defaults(); !reflect.DeepEqual(cfg.Histogram.Letters, def.Histogram.Letters) || !reflect.DeepEqual(cfg.Corrections.Letters, def.Corrections.Letters) {
		t.Errorf("letters = %v, %v; want defaults", cfg.Histogram.Letters, cfg.Corrections.Letters)
	}
}

func TestParseErrors(t *testing.T) {
	for _, data := range []string{
		"[style\n",
		"[style]\nnonesuch = 1\n",
		"[[histogram.letters]]\nname = \"A\"\nmin = 5\n[[histogram.letters]]\nname = \"B\"\nmin = 6\n",
		"[histogram]\ncumulative_color = \"blurple\"\n",
	} {
		cfg, err := Parse(data)
		if err == nil {
			t.Errorf("Parse(%q) succeeded", data)
		}
		if cfg == nil || cfg.Style.DPI != plot.DefaultStyle().DPI {
			t.Errorf("Parse(%q) did not return defaults", data)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aspen.toml")
	if err := os.WriteFile(path, []byte(sample), 0666); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Histogram.Title != "Quiz 1" {
		t.Errorf("title %q; want Quiz 1", cfg.Histogram.Title)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("Load of missing file succeeded")
	}

	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	if _, err := Load(""); !errors.Is(err, ErrNoConfig) {
		t.Errorf("Load with no file: got %v; want ErrNoConfig", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "aspen"), 0777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "aspen", "config.toml"), []byte(sample), 0666); err != nil {
		t.Fatal(err)
	}
	if cfg, err := Load(""); err != nil || cfg.Style.DPI != 100 {
		t.Errorf("Load from search path: %v", err)
	}
}

func TestRegister(t *testing.T) {
	cfg, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	reg := colormap.NewRegistry()
	if err := cfg.Register(reg); err != nil {
		t.Fatal(err)
	}
	if got, want := reg.Names(), []string{"berkeley", "gold", "gold_r"}; !reflect.DeepEqual(got, want) {
		t.Errorf("registered %v; want %v", got, want)
	}
	gold, _ := reg.Get("gold")
	if gold.Len() != 16 {
		t.Errorf("gold has %d samples; want 16", gold.Len())
	}
	berkeley, _ := reg.Get("berkeley")
	if want := colormap.MustResolve("#1c2676"); berkeley.Samples[0] != want {
		t.Errorf("berkeley starts at %v; want %v", berkeley.Samples[0], want)
	}

	// Registering again collides.
	if err := cfg.Register(reg); !errors.Is(err, colormap.ErrDuplicate) {
		t.Errorf("second Register: got %v; want ErrDuplicate", err)
	}
}

func TestColormapBuildErrors(t *testing.T) {
	for _, m := range []Colormap{
		{Colors: []string{"red", "blue"}},
		{Name: "x", Colors: []string{"red"}},
		{Name: "x", Palette: "nonesuch", Colors: []string{"red", "blue"}},
		{Name: "x", Palette: "smc", Colors: []string{"red", "magenta"}},
	} {
		if _, err := m.Build(); err == nil {
			t.Errorf("Build(%+v) succeeded", m)
		}
	}
}
