// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/aspenlab/aspen/colormap"
	"github.com/aspenlab/aspen/palettes"
)

var palettesConfig string

var cmdPalettesFlags = flag.NewFlagSet(os.Args[0]+" palettes", flag.ExitOnError)

func init() {
	f := cmdPalettesFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s palettes [flags] [name]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&palettesConfig, "config", "", "read configuration from `file`")
	registerSubcommand("palettes", "[flags] [name] - list palettes and colormaps", cmdPalettes, f)
}

func cmdPalettes() {
	if cmdPalettesFlags.NArg() > 1 {
		cmdPalettesFlags.Usage()
		os.Exit(2)
	}
	if cmdPalettesFlags.NArg() == 1 {
		name := cmdPalettesFlags.Arg(0)
		pal, ok := palettes.Lookup(name)
		if !ok {
			log.Fatalf("unknown palette %q", name)
		}
		printPalette(os.Stdout, pal)
		return
	}

	for _, pal := range palettes.All {
		fmt.Printf("%s (%d colors)\n", pal.Name(), pal.Len())
	}
	reg, _ := setup(loadConfig(palettesConfig))
	fmt.Printf("\ncolormaps:\n")
	def := reg.Default()
	for _, name := range reg.Names() {
		cm, _ := reg.Get(name)
		mark := ""
		if cm == def {
			mark = " (default)"
		}
		fmt.Printf("  %s%s\n", name, mark)
	}
}

// printPalette prints the entries of pal in order.
func printPalette(w io.Writer, pal *colormap.Palette) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, e := range pal.Entries() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Color.Hex(), e.Spec)
	}
	tw.Flush()
}
