// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cmapview previews colormaps and palettes in a true-color terminal.
//
// Usage:
//
//	cmapview [-palette] [-config file] [name...]
//
// By default cmapview draws each registered colormap as a bar across
// the terminal. With -palette, it instead shows a swatch for every
// entry of each palette. If names are given, only those colormaps or
// palettes are shown.
//
// Use the arrow keys or j and k to scroll and q or Escape to quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/aspenlab/aspen/colormap"
	"github.com/aspenlab/aspen/config"
	"github.com/aspenlab/aspen/palettes"
)

func main() {
	log.SetPrefix("cmapview: ")
	log.SetFlags(0)

	var (
		flagPalette = flag.Bool("palette", false, "show palettes instead of colormaps")
		flagConfig  = flag.String("config", "", "read extra colormaps from `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [name...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var rows []row
	var err error
	if *flagPalette {
		rows, err = paletteRows(flag.Args())
	} else {
		var reg *colormap.Registry
		if reg, err = registry(*flagConfig); err == nil {
			rows, err = colormapRows(reg, flag.Args())
		}
	}
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	v := newView(screen, rows)
	v.run()
	screen.Fini()
}

// registry returns a registry of the built-in colormaps and those
// defined by the configuration file at path.
func registry(path string) (*colormap.Registry, error) {
	cfg, err := config.Load(path)
	if err != nil && !errors.Is(err, config.ErrNoConfig) {
		return nil, err
	}
	reg := colormap.NewRegistry()
	if err := palettes.Register(reg); err != nil {
		return nil, err
	}
	if err := cfg.Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// colormapRows returns a row for each colormap in names, or for every
// colormap in reg if names is empty.
func colormapRows(reg *colormap.Registry, names []string) ([]row, error) {
	if len(names) == 0 {
		names = reg.Names()
	}
	var rows []row
	for _, name := range names {
		cm, ok := reg.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown colormap %q", name)
		}
		rows = append(rows, row{label: name, at: cm.At})
	}
	return rows, nil
}

// paletteRows returns a heading for each palette in names, or for
// every palette if names is empty, followed by a row for each entry.
func paletteRows(names []string) ([]row, error) {
	pals := palettes.All
	if len(names) > 0 {
		pals = nil
		for _, name := range names {
			pal, ok := palettes.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("unknown palette %q", name)
			}
			pals = append(pals, pal)
		}
	}
	var rows []row
	for i, pal := range pals {
		if i > 0 {
			rows = append(rows, row{})
		}
		rows = append(rows, row{label: pal.Name()})
		for _, e := range pal.Entries() {
			c := e.Color
			rows = append(rows, row{
				label: "  " + e.Name,
				at:    func(float64) colormap.RGBA { return c },
				width: swatchWidth,
				note:  c.Hex(),
			})
		}
	}
	return rows, nil
}
