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

	"github.com/aspenlab/aspen/measure"
	"github.com/aspenlab/aspen/physconst"
)

var constBodies bool

var cmdConstFlags = flag.NewFlagSet(os.Args[0]+" const", flag.ExitOnError)

func init() {
	f := cmdConstFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s const [flags] [name...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nWith no names, prints every constant. Names may also name planets.\n\n")
		f.PrintDefaults()
	}
	f.BoolVar(&constBodies, "bodies", false, "print the solar system table")
	registerSubcommand("const", "[flags] [name...] - print physical constants", cmdConst, f)
}

func cmdConst() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	defer tw.Flush()

	if constBodies {
		printBodies(tw, physconst.SolarSystem)
		return
	}
	names := cmdConstFlags.Args()
	if len(names) == 0 {
		names = physconst.Names()
	}
	var bodies []physconst.Body
	for _, name := range names {
		if c, ok := physconst.Lookup(name); ok {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Name, formatValue(c.Value), c.Unit, c.Doc)
			continue
		}
		if b, ok := physconst.BodyByName(name); ok {
			bodies = append(bodies, b)
			continue
		}
		tw.Flush()
		log.Fatalf("unknown constant %q", name)
	}
	if len(bodies) > 0 {
		if len(bodies) < len(names) {
			fmt.Fprintln(tw)
		}
		printBodies(tw, bodies)
	}
}

func printBodies(w io.Writer, bodies []physconst.Body) {
	fmt.Fprintf(w, "body\tmass (kg)\ta (AU)\te\tperiod (yr)\tradius (m)\n")
	for _, b := range bodies {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%s\n", b.Name, formatValue(b.Mass), b.SemiMajorAxis, b.Eccentricity, b.Period, formatValue(b.Radius))
	}
}

// formatValue formats x in scientific notation to six significant
// figures, as in "6.6743×10^-11".
func formatValue(x float64) string {
	coef, exp, err := measure.ScientificNotation(x)
	if err != nil {
		return fmt.Sprint(x)
	}
	if exp == 0 {
		return fmt.Sprintf("%.6g", coef)
	}
	return fmt.Sprintf("%.6g×10^%d", coef, exp)
}
