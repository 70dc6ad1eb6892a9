// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aspenlab/aspen/plot"
)

// readScores reads a scores file. Scores are separated by white
// space. Blank lines and lines starting with "#" are ignored. A line
// of the form "max <points>" gives the maximum possible score; if
// there is none, max is 0.
func readScores(r io.Reader) (scores []float64, max int, err error) {
	scan := bufio.NewScanner(r)
	for lineno := 1; scan.Scan(); lineno++ {
		fs := strings.Fields(scan.Text())
		if len(fs) == 0 || strings.HasPrefix(fs[0], "#") {
			continue
		}
		if fs[0] == "max" {
			if len(fs) != 2 {
				return nil, 0, fmt.Errorf("line %d: want \"max <points>\"", lineno)
			}
			if max, err = strconv.Atoi(fs[1]); err != nil {
				return nil, 0, fmt.Errorf("line %d: bad max score: %w", lineno, err)
			}
			continue
		}
		for _, f := range fs {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, 0, fmt.Errorf("line %d: %w", lineno, err)
			}
			scores = append(scores, x)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, 0, err
	}
	return scores, max, nil
}

// readScoresFile is readScores on the named file.
func readScoresFile(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	scores, max, err := readScores(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return scores, max, nil
}

// readScatter reads tab-separated scatter plot data. The first line
// gives the series labels. An optional second line starting with
// "max" gives the axis limit of each series. Each following line is
// one point.
func readScatter(r io.Reader) (plot.ScatterData, error) {
	var d plot.ScatterData
	scan := bufio.NewScanner(r)
	lineno := 0
	for scan.Scan() {
		lineno++
		line := scan.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fs := strings.Split(line, "\t")
		if d.Labels == nil {
			for _, f := range fs {
				d.Labels = append(d.Labels, strings.TrimSpace(f))
			}
			d.Series = make([][]float64, len(fs))
			continue
		}
		isMax := false
		if strings.TrimSpace(fs[0]) == "max" && d.Max == nil && len(d.Series[0]) == 0 {
			isMax, fs = true, fs[1:]
		}
		if len(fs) != len(d.Labels) {
			return d, fmt.Errorf("line %d: %d fields, want %d", lineno, len(fs), len(d.Labels))
		}
		vals := make([]float64, len(fs))
		for i, f := range fs {
			x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return d, fmt.Errorf("line %d: %w", lineno, err)
			}
			vals[i] = x
		}
		if isMax {
			d.Max = vals
			continue
		}
		for i, x := range vals {
			d.Series[i] = append(d.Series[i], x)
		}
	}
	if err := scan.Err(); err != nil {
		return d, err
	}
	if d.Labels == nil {
		return d, fmt.Errorf("no header line")
	}
	return d, d.Validate()
}
