// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grades

import (
	"fmt"
	"sort"
)

// A Hist is a histogram of scores over fixed bin edges.
//
// Bin i covers [Edges[i], Edges[i+1]), except that the last bin also
// includes its right edge. Scores outside all bins are not counted.
type Hist struct {
	Edges  []float64
	Counts []int

	// Fractions[i] is Counts[i] divided by the total number of
	// scores, including any that fell outside the bins.
	Fractions []float64

	// Cumulative[i] is the sum of Fractions[0] through
	// Fractions[i].
	Cumulative []float64
}

// Histogram bins scores over edges, which must have at least two
// elements and be strictly increasing.
func Histogram(scores, edges []float64) (*Hist, error) {
	if len(scores) == 0 {
		return nil, ErrNoScores
	}
	if len(edges) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 bin edges, got %d", ErrInvalidInput, len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i-1] < edges[i]) {
			return nil, fmt.Errorf("%w: bin edges %g, %g not increasing", ErrInvalidInput, edges[i-1], edges[i])
		}
	}

	h := &Hist{
		Edges:      append([]float64(nil), edges...),
		Counts:     make([]int, len(edges)-1),
		Fractions:  make([]float64, len(edges)-1),
		Cumulative: make([]float64, len(edges)-1),
	}
	for _, x := range scores {
		if i := h.Bin(x); i >= 0 {
			h.Counts[i]++
		}
	}
	n := float64(len(scores))
	cum := 0.0
	for i, c := range h.Counts {
		h.Fractions[i] = float64(c) / n
		cum += h.Fractions[i]
		h.Cumulative[i] = cum
	}
	return h, nil
}

// Bin returns the index of the bin containing x, or -1 if x is
// outside every bin.
func (h *Hist) Bin(x float64) int {
	e := h.Edges
	last := len(e) - 1
	if !(e[0] <= x && x <= e[last]) {
		return -1
	}
	if x == e[last] {
		return last - 1
	}
	// First edge > x, minus one.
	return sort.Search(len(e), func(i int) bool { return e[i] > x }) - 1
}

// Len returns the number of bins.
func (h *Hist) Len() int {
	return len(h.Counts)
}

// Center returns the midpoint of bin i.
func (h *Hist) Center(i int) float64 {
	return (h.Edges[i] + h.Edges[i+1]) / 2
}

// MaxFraction returns the largest element of Fractions.
func (h *Hist) MaxFraction() float64 {
	max := 0.0
	for _, f := range h.Fractions {
		if f > max {
			max = f
		}
	}
	return max
}

// IntegerEdges returns the bin edges 0, 1, ..., max+1, which give one
// bin per integer score from 0 to max.
func IntegerEdges(max int) []float64 {
	edges := make([]float64, max+2)
	for i := range edges {
		edges[i] = float64(i)
	}
	return edges
}
