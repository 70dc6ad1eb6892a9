// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/aspenlab/aspen/measure"
)

var cmdRoundFlags = flag.NewFlagSet(os.Args[0]+" round", flag.ExitOnError)

func init() {
	f := cmdRoundFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s round <value> <uncertainty>\n", os.Args[0])
		f.PrintDefaults()
	}
	registerSubcommand("round", "<value> <uncertainty> - round a measurement to its uncertainty", cmdRound, f)
}

func cmdRound() {
	if cmdRoundFlags.NArg() != 2 {
		cmdRoundFlags.Usage()
		os.Exit(2)
	}
	var xs [2]float64
	for i := range xs {
		x, err := strconv.ParseFloat(cmdRoundFlags.Arg(i), 64)
		if err != nil {
			log.Fatal(err)
		}
		xs[i] = x
	}
	s, err := measure.Format(xs[0], xs[1])
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s)
}
