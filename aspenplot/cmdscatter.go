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

	"github.com/aspenlab/aspen/plot"
)

var scatter struct {
	config string
	cmap   string
	title  string
	out    string
}

var cmdScatterFlags = flag.NewFlagSet(os.Args[0]+" scatter", flag.ExitOnError)

func init() {
	f := cmdScatterFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s scatter [flags] <data.tsv>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, `
The first line of data.tsv names the columns. The first two columns
are the x and y coordinates, an optional third colors the points, and
an optional fourth sizes them. A line starting with "max" after the
header sets the limit of each column.

`)
		f.PrintDefaults()
	}
	f.StringVar(&scatter.config, "config", "", "read configuration from `file`")
	f.StringVar(&scatter.cmap, "cmap", "", "color points with colormap `name` (default from config)")
	f.StringVar(&scatter.title, "title", "", "plot `title` (default from config)")
	f.StringVar(&scatter.out, "o", "", "write SVG to `file` (default stdout)")
	registerSubcommand("scatter", "[flags] <data.tsv> - plot the correlation between scores", cmdScatter, f)
}

func cmdScatter() {
	if cmdScatterFlags.NArg() != 1 {
		cmdScatterFlags.Usage()
		os.Exit(2)
	}
	path := cmdScatterFlags.Arg(0)
	cfg := loadConfig(scatter.config)
	reg, st := setup(cfg)
	cm := lookupColormap(reg, scatter.cmap)
	opts := cfg.Scatter
	if scatter.title != "" {
		opts.Title = scatter.title
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	data, err := readScatter(f)
	f.Close()
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}

	var buf bytes.Buffer
	if err := plot.Scatter(&buf, data, opts, cm, st); err != nil {
		log.Fatal(err)
	}
	if err := writeOutput(scatter.out, buf.Bytes(), false); err != nil {
		log.Fatal(err)
	}
}
