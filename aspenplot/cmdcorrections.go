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

var corrections struct {
	config string
	n      int
	frac   float64
	title  string
	out    string
}

var cmdCorrectionsFlags = flag.NewFlagSet(os.Args[0]+" corrections", flag.ExitOnError)

func init() {
	f := cmdCorrectionsFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s corrections [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&corrections.config, "config", "", "read configuration from `file`")
	f.IntVar(&corrections.n, "n", 0, "number of `questions` (default from config)")
	f.Float64Var(&corrections.frac, "frac", 0, "`fraction` of missed points returned (default from config)")
	f.StringVar(&corrections.title, "title", "", "plot `title` (default from config)")
	f.StringVar(&corrections.out, "o", "", "write SVG to `file` (default stdout)")
	registerSubcommand("corrections", "[flags] - plot the effect of quiz corrections on grades", cmdCorrections, f)
}

func cmdCorrections() {
	if cmdCorrectionsFlags.NArg() != 0 {
		cmdCorrectionsFlags.Usage()
		os.Exit(2)
	}
	cfg := loadConfig(corrections.config)
	_, st := setup(cfg)
	opts := cfg.Corrections
	if corrections.n != 0 {
		opts.Questions = corrections.n
	}
	if corrections.frac != 0 {
		opts.Frac = corrections.frac
	}
	if corrections.title != "" {
		opts.Title = corrections.title
	}

	var buf bytes.Buffer
	if err := plot.Corrections(&buf, opts, st); err != nil {
		log.Fatal(err)
	}
	if err := writeOutput(corrections.out, buf.Bytes(), false); err != nil {
		log.Fatal(err)
	}
}
