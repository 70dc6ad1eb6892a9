// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// Marker areas, in square points, produced by PointSizes.
const (
	MinPointSize      = 10
	MaxPointSize      = 1000
	ConstantPointSize = 100
)

// PointSizes maps data linearly onto marker areas between
// MinPointSize and MaxPointSize. If every value is the same, every
// marker gets ConstantPointSize.
func PointSizes(data []float64) []float64 {
	out := make([]float64, len(data))
	if len(data) == 0 {
		return out
	}
	min, max := stats.Bounds(data)
	if min == max {
		for i := range out {
			out[i] = ConstantPointSize
		}
		return out
	}
	s := scale.Linear{Min: min, Max: max}
	for i, x := range data {
		out[i] = MinPointSize + s.Map(x)*(MaxPointSize-MinPointSize)
	}
	return out
}
