// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palettes defines institutional color palettes and the
// colormaps derived from them.
//
// Color names are lower case because they are looked up as data.
package palettes

import (
	"fmt"

	"github.com/aspenlab/aspen/colormap"
)

type entry = colormap.Entry

// SMC is the Saint Mary's College of California palette.
var SMC = colormap.MustPalette("smc",
	entry{Name: "red", Spec: "#CF3339"},        // slightly dark red
	entry{Name: "navy", Spec: "#143257"},       // dark navy
	entry{Name: "silver", Spec: "#afb0a2"},     // darker than the official silver
	entry{Name: "origsilver", Spec: "#BEC1C1"}, // official silver
	entry{Name: "garden", Spec: "#F3B3A2"},     // salmon
	entry{Name: "bay", Spec: "#6CC2C3"},        // light teal
	entry{Name: "gray", Spec: "#81959B"},       // gael gray
	entry{Name: "sun", Spec: "#F2BA2A"},        // gold
	entry{Name: "canyon", Spec: "#0A5B5E"},     // dark teal green
	entry{Name: "cross", Spec: "#D1D2C4"},      // off-white
	entry{Name: "lawn", Spec: "#67934F"},       // grass green
	entry{Name: "water", Spec: "#6298C3"},      // fountain water, muted blue
	entry{Name: "skies", Spec: "#13A3CE"},      // brighter sky blue
)

// Northwestern is the Northwestern University palette, darkest to
// lightest.
var Northwestern = colormap.MustPalette("northwestern",
	entry{Name: "darkestpurple", Spec: "#260642"},
	entry{Name: "darkpurple", Spec: "#38185b"},
	entry{Name: "purple", Spec: "#4e2b84"},
	entry{Name: "lightpurple", Spec: "#765d9f"},
	entry{Name: "lighterpurple", Spec: "#a393c0"},
	entry{Name: "lightestpurple", Spec: "#e1ddec"},
	entry{Name: "lightgray", Spec: "#f0f0f0"},
)

// UCB is the UC Berkeley palette.
var UCB = colormap.MustPalette("ucb",
	entry{Name: "blue", Spec: "#1c2676"}, // Berkeley Blue
	entry{Name: "gold", Spec: "#f4b516"}, // California Gold
	entry{Name: "rose", Spec: "#770747"},
	entry{Name: "purple", Spec: "#431170"},
	entry{Name: "green", Spec: "#19553a"},
	entry{Name: "gray", Spec: "#808080"},
	entry{Name: "lightgray", Spec: "#f2f2f2"},
	entry{Name: "heritage", Spec: "#c09748"}, // Heritage Gold
)

// AaronTeal and AaronRed are document themes. They share colors and
// differ in which color leads the cycle.
var (
	AaronTeal = colormap.MustPalette("aaronteal",
		entry{Name: "color1", Spec: "#348b8a"}, // teal
		entry{Name: "color2", Spec: "#99111f"}, // red
		entry{Name: "color3", Spec: "#d39f0c"}, // gold
		entry{Name: "color4", Spec: "#153257"}, // navy
		entry{Name: "colorlinks", Spec: "#284695"},
	)
	AaronRed = colormap.MustPalette("aaronred",
		entry{Name: "color1", Spec: "#99111f"},
		entry{Name: "color2", Spec: "#348b8a"},
		entry{Name: "color3", Spec: "#d39f0c"},
		entry{Name: "color4", Spec: "#153257"},
		entry{Name: "colorlinks", Spec: "#284695"},
	)
)

// All lists every palette in this package.
var All = []*colormap.Palette{SMC, Northwestern, UCB, AaronTeal, AaronRed}

// Lookup returns the palette named name.
func Lookup(name string) (*colormap.Palette, bool) {
	for _, p := range All {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// A Recipe describes a colormap derived from a palette.
type Recipe struct {
	Name    string
	Palette *colormap.Palette
	Colors  []string // color names in Palette, in colormap order
}

// Recipes are the derived colormaps.
var Recipes = []Recipe{
	// Diverging red to navy through silver.
	{"smc", SMC, []string{"red", "origsilver", "navy"}},
	// Sequential, light to dark purple.
	{"nu", Northwestern, []string{"lightestpurple", "lighterpurple", "lightpurple", "purple", "darkpurple", "darkestpurple"}},
	// Diverging blue to gold.
	{"ucb", UCB, []string{"blue", "lightgray", "gold"}},
	// Sequential, link blue to teal.
	{"teal2", AaronTeal, []string{"colorlinks", "color1"}},
}

// Build builds the recipe's colormap with n samples (0 for
// colormap.DefaultSamples).
func (r Recipe) Build(n int) (*colormap.Colormap, error) {
	specs, err := r.Palette.Specs(r.Colors...)
	if err != nil {
		return nil, err
	}
	return colormap.Build(specs, colormap.Options{N: n, Name: r.Name})
}

// Register builds every recipe's colormap and its reversal and
// registers them in reg under the recipe name and the name with an
// "_r" suffix.
func Register(reg *colormap.Registry) error {
	for _, r := range Recipes {
		cm, err := r.Build(0)
		if err != nil {
			return fmt.Errorf("colormap %s: %w", r.Name, err)
		}
		if err := reg.Register(r.Name, cm); err != nil {
			return err
		}
		if err := reg.Register(r.Name+"_r", cm.Reversed()); err != nil {
			return err
		}
	}
	return nil
}
