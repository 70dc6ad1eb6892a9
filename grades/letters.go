// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grades

import "fmt"

// A Letter is a letter grade and the minimum score that earns it.
type Letter struct {
	Name string  `toml:"name"`
	Min  float64 `toml:"min"`
}

// A Scale is a list of letter grades from highest to lowest. Min must
// strictly decrease along the scale.
type Scale []Letter

// DefaultScale is a plain 90/80/70/60 percentage scale.
var DefaultScale = Scale{{"A", 90}, {"B", 80}, {"C", 70}, {"D", 60}, {"F", 0}}

// Validate checks that s is non-empty and strictly decreasing.
func (s Scale) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty grade scale", ErrInvalidInput)
	}
	for i := 1; i < len(s); i++ {
		if !(s[i].Min < s[i-1].Min) {
			return fmt.Errorf("%w: grade %s (min %g) does not fall below grade %s (min %g)", ErrInvalidInput, s[i].Name, s[i].Min, s[i-1].Name, s[i-1].Min)
		}
	}
	return nil
}

// Edges returns the letter-grade bin edges in ascending order: the
// minimum of each grade from lowest to highest, followed by
// maxScore+1 so that the top bin includes maxScore.
func (s Scale) Edges(maxScore float64) []float64 {
	edges := make([]float64, 0, len(s)+1)
	for i := len(s) - 1; i >= 0; i-- {
		edges = append(edges, s[i].Min)
	}
	return append(edges, maxScore+1)
}

// Ascending returns the grade names from lowest to highest, matching
// the bins of Edges.
func (s Scale) Ascending() []string {
	names := make([]string, len(s))
	for i, l := range s {
		names[len(s)-1-i] = l.Name
	}
	return names
}

// Grade returns the letter grade earned by score, or "" if score is
// below every grade's minimum.
func (s Scale) Grade(score float64) string {
	for _, l := range s {
		if score >= l.Min {
			return l.Name
		}
	}
	return ""
}
