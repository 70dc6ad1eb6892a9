// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kballard/go-shellquote"

	"github.com/aspenlab/aspen/colormap"
	"github.com/aspenlab/aspen/palettes"
	"github.com/aspenlab/aspen/plot"
)

var cmap struct {
	n             int
	left, right   string
	colors        string
	palette       string
	name          string
	config        string
	out           string
	width, height int
}

var cmdCmapFlags = flag.NewFlagSet(os.Args[0]+" cmap", flag.ExitOnError)

func init() {
	f := cmdCmapFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s cmap [flags] [colors...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nWith no colors, draws the colormap named by -name.\n\n")
		f.PrintDefaults()
	}
	f.IntVar(&cmap.n, "n", 0, "interpolate `samples` colors (default 512)")
	f.StringVar(&cmap.left, "left", "", "replace the first sample with `color`")
	f.StringVar(&cmap.right, "right", "", "replace the last sample with `color`")
	f.StringVar(&cmap.colors, "colors", "", "shell-quoted `list` of colors, before any arguments")
	f.StringVar(&cmap.palette, "palette", "", "colors are entry names in palette `name`")
	f.StringVar(&cmap.name, "name", "", "draw the registered colormap `name` (default from config)")
	f.StringVar(&cmap.config, "config", "", "read configuration from `file`")
	f.StringVar(&cmap.out, "o", "", "write PNG to `file` (default stdout)")
	f.IntVar(&cmap.width, "width", 512, "image width in `pixels`")
	f.IntVar(&cmap.height, "height", 48, "image height in `pixels`")
	registerSubcommand("cmap", "[flags] [colors...] - draw a colorbar as a PNG", cmdCmap, f)
}

func cmdCmap() {
	colors := cmdCmapFlags.Args()
	if cmap.colors != "" {
		words, err := shellquote.Split(cmap.colors)
		if err != nil {
			log.Fatalf("bad -colors: %v", err)
		}
		colors = append(words, colors...)
	}

	var cm *colormap.Colormap
	if len(colors) == 0 {
		if cmap.palette != "" || cmap.n != 0 || cmap.left != "" || cmap.right != "" {
			cmdCmapFlags.Usage()
			os.Exit(2)
		}
		reg, _ := setup(loadConfig(cmap.config))
		cm = lookupColormap(reg, cmap.name)
	} else {
		if cmap.name != "" {
			cmdCmapFlags.Usage()
			os.Exit(2)
		}
		if cmap.palette != "" {
			pal, ok := palettes.Lookup(cmap.palette)
			if !ok {
				log.Fatalf("unknown palette %q", cmap.palette)
			}
			var err error
			if colors, err = pal.Specs(colors...); err != nil {
				log.Fatal(err)
			}
		}
		var err error
		cm, err = colormap.Build(colors, colormap.Options{N: cmap.n, Left: cmap.left, Right: cmap.right})
		if err != nil {
			log.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := plot.Colorbar(&buf, cm, cmap.width, cmap.height); err != nil {
		log.Fatal(err)
	}
	if err := writeOutput(cmap.out, buf.Bytes(), true); err != nil {
		log.Fatal(err)
	}
}
