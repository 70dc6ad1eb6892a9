// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
	"reflect"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/palette"

	"github.com/aspenlab/aspen/colormap"
)

var colorType = reflect.TypeOf((*color.Color)(nil)).Elem()

// ColormapRanger is a gg.ContinuousRanger that maps [0, 1] onto a
// colormap.
type ColormapRanger struct {
	Colormap *colormap.Colormap
}

var _ gg.ContinuousRanger = ColormapRanger{}

// A Colormap can stand in anywhere gg takes a continuous palette.
var _ palette.Continuous = (*colormap.Colormap)(nil)

func (r ColormapRanger) RangeType() reflect.Type {
	return colorType
}

func (r ColormapRanger) Map(x float64) interface{} {
	return r.Colormap.Map(x)
}

// Unmap returns the position of the center of the first sample equal
// to y.
func (r ColormapRanger) Unmap(y interface{}) (float64, bool) {
	c, ok := y.(colormap.RGBA)
	if !ok {
		return 0, false
	}
	n := r.Colormap.Len()
	for i, s := range r.Colormap.Samples {
		if s == c {
			return (float64(i) + 0.5) / float64(n), true
		}
	}
	return 0, false
}
