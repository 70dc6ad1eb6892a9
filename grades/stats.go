// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grades computes the statistics behind grade-distribution
// plots: summaries, histograms, letter-grade bins, and the effect of
// returning points for corrections.
//
// Statistics are always computed on the full input. No function in
// this package modifies the caller's scores.
package grades

import (
	"errors"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

var (
	ErrNoScores     = errors.New("no scores")
	ErrInvalidInput = errors.New("invalid input")
)

// A Summary gives descriptive statistics of a set of scores.
type Summary struct {
	N      int
	Mean   float64
	Median float64

	// Modes are all of the values tied for the highest frequency,
	// in ascending order.
	Modes []float64

	Min, Max float64

	// MaxCount is the number of scores equal to Max.
	MaxCount int
}

// Summarize computes the Summary of scores.
func Summarize(scores []float64) (Summary, error) {
	if len(scores) == 0 {
		return Summary{}, ErrNoScores
	}
	sorted := sortedCopy(scores)
	sample := stats.Sample{Xs: sorted, Sorted: true}
	min, max := sample.Bounds()

	s := Summary{
		N:      len(scores),
		Mean:   stats.Mean(scores),
		Median: sample.Quantile(0.5),
		Min:    min,
		Max:    max,
	}

	// Count runs of equal values in sorted order.
	best := 0
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		switch n := j - i; {
		case n > best:
			best = n
			s.Modes = append(s.Modes[:0], sorted[i])
		case n == best:
			s.Modes = append(s.Modes, sorted[i])
		}
		if sorted[i] == max {
			s.MaxCount = j - i
		}
		i = j
	}
	return s, nil
}

// CumulativeScores returns scores in ascending order and, for each,
// the fraction of scores at or before it in that order.
func CumulativeScores(scores []float64) (xs, fracs []float64) {
	xs = sortedCopy(scores)
	fracs = make([]float64, len(xs))
	for i := range xs {
		fracs[i] = float64(i+1) / float64(len(xs))
	}
	return xs, fracs
}

func sortedCopy(xs []float64) []float64 {
	out := append([]float64(nil), xs...)
	sort.Float64s(out)
	return out
}
