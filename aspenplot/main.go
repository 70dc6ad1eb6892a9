// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Aspenplot renders colorbars and grade plots and prints physical
// constants.
//
// Usage:
//
//	aspenplot <subcommand> [flags] [args...]
//
// Run "aspenplot help" for a list of subcommands and "aspenplot
// <subcommand> -h" for the flags of each.
//
// Subcommands that draw plots read style and grading settings from
// the TOML file named by their -config flag, or by default from
// $XDG_CONFIG_HOME/aspen/config.toml or ~/.config/aspen/config.toml.
// See package github.com/aspenlab/aspen/config for the format. If
// there is no configuration file, aspenplot uses the defaults.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/gg"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/aspenlab/aspen/colormap"
	"github.com/aspenlab/aspen/config"
	"github.com/aspenlab/aspen/palettes"
	"github.com/aspenlab/aspen/plot"
)

type subcommand struct {
	name, desc string
	cmd        func()
	flags      *flag.FlagSet
}

var subcommands []*subcommand

// registerSubcommand adds a subcommand. cmd is called after flags
// has parsed the subcommand's arguments.
func registerSubcommand(name, desc string, cmd func(), flags *flag.FlagSet) {
	subcommands = append(subcommands, &subcommand{name, desc, cmd, flags})
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags] [args...]\n\nSubcommands:\n", os.Args[0])
	for _, sub := range subcommands {
		fmt.Fprintf(os.Stderr, "  %s %s\n", sub.name, sub.desc)
	}
}

func main() {
	log.SetPrefix("aspenplot: ")
	log.SetFlags(0)
	gg.Warning = log.New(os.Stderr, "aspenplot: ", 0)

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	name := flag.Arg(0)
	if name == "help" {
		flag.Usage()
		return
	}
	for _, sub := range subcommands {
		if sub.name == name {
			sub.flags.Parse(flag.Args()[1:])
			sub.cmd()
			return
		}
	}
	fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", name)
	flag.Usage()
	os.Exit(2)
}

// loadConfig loads the configuration file at path, or the default
// configuration file if path is "".
func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if errors.Is(err, config.ErrNoConfig) {
		return cfg
	}
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// setup builds the colormap registry for cfg and installs cfg's
// style in it. It returns the registry and the installed style.
func setup(cfg *config.Config) (*colormap.Registry, plot.Style) {
	reg := colormap.NewRegistry()
	if err := palettes.Register(reg); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Register(reg); err != nil {
		log.Fatal(err)
	}
	st := cfg.Style
	pal, ok := palettes.Lookup(st.Palette)
	if !ok {
		log.Fatalf("unknown palette %q", st.Palette)
	}
	if err := st.Install(reg, pal); err != nil {
		log.Fatal(err)
	}
	return reg, st
}

// lookupColormap returns the colormap registered as name, or the
// default colormap if name is "".
func lookupColormap(reg *colormap.Registry, name string) *colormap.Colormap {
	if name == "" {
		return reg.Default()
	}
	cm, ok := reg.Get(name)
	if !ok {
		log.Fatalf("unknown colormap %q", name)
	}
	return cm
}

// writeOutput writes data to the file path, or to stdout if path is
// "" or "-". Binary data is never written to a terminal.
func writeOutput(path string, data []byte, binary bool) error {
	if path != "" && path != "-" {
		return os.WriteFile(path, data, 0666)
	}
	if binary && terminal.IsTerminal(1) {
		return errors.New("refusing to write binary output to a terminal; use -o")
	}
	_, err := os.Stdout.Write(data)
	return err
}
