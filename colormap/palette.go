// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"image/color"
)

// A ColorEntry associates a name with a color.
type ColorEntry struct {
	Name  string
	Spec  string // color specification as written, e.g. "#CF3339"
	Color RGBA
}

// An Entry is a name and color specification used to define a
// Palette.
type Entry struct {
	Name, Spec string
}

// A Palette is an immutable, ordered table of named colors. Order is
// significant: it is the order of the palette's color cycle.
type Palette struct {
	name    string
	entries []ColorEntry
	index   map[string]int
}

// NewPalette resolves entries with DefaultResolver and returns them
// as a Palette. There must be at least one entry, and names must be
// non-empty and unique.
func NewPalette(name string, entries ...Entry) (*Palette, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("palette %s: %w: no colors", name, ErrInvalidInput)
	}
	p := &Palette{
		name:    name,
		entries: make([]ColorEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("palette %s: %w: empty color name", name, ErrInvalidInput)
		}
		if _, ok := p.index[e.Name]; ok {
			return nil, fmt.Errorf("palette %s: %w: duplicate color name %q", name, ErrInvalidInput, e.Name)
		}
		c, err := Resolve(e.Spec)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", name, err)
		}
		p.index[e.Name] = len(p.entries)
		p.entries = append(p.entries, ColorEntry{e.Name, e.Spec, c})
	}
	return p, nil
}

// MustPalette is like NewPalette, but panics on error.
func MustPalette(name string, entries ...Entry) *Palette {
	p, err := NewPalette(name, entries...)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the name of the palette.
func (p *Palette) Name() string {
	return p.name
}

// Len returns the number of colors in p.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns a copy of p's entries in order.
func (p *Palette) Entries() []ColorEntry {
	return append([]ColorEntry(nil), p.entries...)
}

// Names returns the color names of p in order.
func (p *Palette) Names() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Name
	}
	return out
}

// Get returns the color named name.
func (p *Palette) Get(name string) (RGBA, bool) {
	i, ok := p.index[name]
	if !ok {
		return RGBA{}, false
	}
	return p.entries[i].Color, true
}

// Spec returns the color specification of the color named name. It
// panics if there is no such color.
func (p *Palette) Spec(name string) string {
	i, ok := p.index[name]
	if !ok {
		panic(fmt.Sprintf("palette %s has no color %q", p.name, name))
	}
	return p.entries[i].Spec
}

// Specs returns the color specifications of the named colors, in the
// order given. It returns an error if any name is missing. The result
// is suitable as the color list for Build.
func (p *Palette) Specs(names ...string) ([]string, error) {
	out := make([]string, len(names))
	for i, name := range names {
		j, ok := p.index[name]
		if !ok {
			return nil, fmt.Errorf("palette %s has no color %q", p.name, name)
		}
		out[i] = p.entries[j].Spec
	}
	return out, nil
}

// RGBA returns the colors of p in order.
func (p *Palette) RGBA() []RGBA {
	out := make([]RGBA, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Color
	}
	return out
}

// Colors returns the colors of p in order as color.Color values.
func (p *Palette) Colors() []color.Color {
	out := make([]color.Color, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Color
	}
	return out
}

// Cycle returns a new color cycle over p's colors.
func (p *Palette) Cycle() *Cycle {
	return &Cycle{colors: p.RGBA()}
}
