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
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/aspenlab/aspen/plot"
)

var hist struct {
	config string
	cmap   string
	out    string
	title  string
	watch  bool
}

var cmdHistFlags = flag.NewFlagSet(os.Args[0]+" hist", flag.ExitOnError)

func init() {
	f := cmdHistFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s hist [flags] <scores file>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, `
The scores file lists scores separated by white space. A line
"max <points>" gives the maximum possible score, which must match
the configured number of points.

`)
		f.PrintDefaults()
	}
	f.StringVar(&hist.config, "config", "", "read configuration from `file`")
	f.StringVar(&hist.cmap, "cmap", "", "color bars with colormap `name` (default from config)")
	f.StringVar(&hist.out, "o", "", "write SVG to `file` (default stdout)")
	f.StringVar(&hist.title, "title", "", "plot `title` (default from config)")
	f.BoolVar(&hist.watch, "watch", false, "re-render when the scores file changes; requires -o")
	registerSubcommand("hist", "[flags] <scores file> - plot a grade histogram", cmdHist, f)
}

func cmdHist() {
	if cmdHistFlags.NArg() != 1 || (hist.watch && hist.out == "") {
		cmdHistFlags.Usage()
		os.Exit(2)
	}
	path := cmdHistFlags.Arg(0)

	cfg := loadConfig(hist.config)
	reg, st := setup(cfg)
	cm := lookupColormap(reg, hist.cmap)
	opts := cfg.Histogram
	if hist.title != "" {
		opts.Title = hist.title
	}

	render := func() error {
		scores, max, err := readScoresFile(path)
		if err != nil {
			return err
		}
		if max == 0 {
			max = opts.NumPoints
		}
		var buf bytes.Buffer
		if err := plot.Histogram(&buf, scores, max, opts, cm, st); err != nil {
			return err
		}
		return writeOutput(hist.out, buf.Bytes(), false)
	}
	if err := render(); err != nil {
		log.Fatal(err)
	}
	if !hist.watch {
		return
	}

	if err := watch(path, func() {
		if err := render(); err != nil {
			log.Print(err)
			return
		}
		log.Printf("wrote %s", hist.out)
	}); err != nil {
		log.Fatal(err)
	}
}

// watch calls render each time the file at path is written, until
// the process is interrupted. A file renamed over path counts as a
// write.
func watch(path string, render func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	target := filepath.Clean(path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				render()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Print(err)
		case <-sig:
			return nil
		}
	}
}
