// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grades

import (
	"fmt"
	"math"
)

// Corrections describes the effect of returning a fraction of the
// missed points on a quiz of N questions.
type Corrections struct {
	N    int
	Frac float64

	// Original is the scores 0 through N. Returned[i] is the
	// number of points returned to Original[i], and New[i] is
	// the corrected score.
	Original, Returned, New []float64
}

// NewCorrections computes corrected scores for every possible score
// on an n-question quiz when frac of the missed points are returned,
// rounded down to whole points. frac must be in (0, 1].
func NewCorrections(n int, frac float64) (*Corrections, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: quiz must have at least one question", ErrInvalidInput)
	}
	if !(0 < frac && frac <= 1) {
		return nil, fmt.Errorf("%w: fraction of points returned must be in (0, 1], got %g", ErrInvalidInput, frac)
	}
	c := &Corrections{
		N:        n,
		Frac:     frac,
		Original: make([]float64, n+1),
		Returned: make([]float64, n+1),
		New:      make([]float64, n+1),
	}
	for s := 0; s <= n; s++ {
		c.Original[s] = float64(s)
		c.Returned[s] = math.Floor(frac * float64(n-s))
		c.New[s] = c.Original[s] + c.Returned[s]
	}
	return c, nil
}

// Boundaries returns the grade minimums of scale in ascending order,
// followed by n. These are the band edges of a corrections chart.
func Boundaries(scale Scale, n int) []float64 {
	edges := scale.Edges(float64(n))
	edges[len(edges)-1] = float64(n)
	return edges
}
