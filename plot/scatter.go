// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/aspenlab/aspen/colormap"
	"github.com/aspenlab/aspen/grades"
)

// ScatterData is a set of parallel data series for a correlation
// scatter plot. The first two series give the x and y coordinates of
// each point. An optional third series colors the points and an
// optional fourth sets their size.
type ScatterData struct {
	Series [][]float64
	Labels []string

	// Max gives the upper limit of each series' axis or color
	// scale. Limits that are missing or zero are taken from the
	// data.
	Max []float64
}

// ScatterOptions controls Scatter.
type ScatterOptions struct {
	Title string `toml:"title"`

	// PointSize is the marker area in square points when there
	// is no size series.
	PointSize float64 `toml:"point_size"`
}

// Validate checks that d has at least two series, that they all have
// the same length, and that each has a distinct label.
func (d ScatterData) Validate() error {
	if len(d.Series) < 2 {
		return fmt.Errorf("%w: need at least two data series for a scatter plot, got %d", grades.ErrInvalidInput, len(d.Series))
	}
	if len(d.Labels) != len(d.Series) {
		return fmt.Errorf("%w: %d labels for %d data series", grades.ErrInvalidInput, len(d.Labels), len(d.Series))
	}
	seen := make(map[string]bool)
	for i, s := range d.Series {
		if len(s) != len(d.Series[0]) {
			return fmt.Errorf("%w: series %q has %d values, want %d", grades.ErrInvalidInput, d.Labels[i], len(s), len(d.Series[0]))
		}
		if seen[d.Labels[i]] {
			return fmt.Errorf("%w: duplicate series label %q", grades.ErrInvalidInput, d.Labels[i])
		}
		seen[d.Labels[i]] = true
	}
	return nil
}

func (d ScatterData) max(i int) float64 {
	if i < len(d.Max) {
		return d.Max[i]
	}
	return 0
}

// Scatter writes a scatter plot of data to w. If there is a third
// series, cm maps it to point colors over [0, Max[2]].
func Scatter(w io.Writer, data ScatterData, opts ScatterOptions, cm *colormap.Colormap, st Style) error {
	if err := data.Validate(); err != nil {
		return err
	}
	width, height := st.Size()

	b := new(table.Builder)
	for i, s := range data.Series {
		b.Add(data.Labels[i], s)
	}
	layer := gg.LayerPoints{X: data.Labels[0], Y: data.Labels[1]}

	// Marker radii as a fraction of the smaller plot dimension.
	areas := make([]float64, len(data.Series[0]))
	if len(data.Series) > 3 {
		areas = PointSizes(data.Series[3])
	} else {
		for i := range areas {
			areas[i] = opts.PointSize
		}
	}
	radii := make([]float64, len(areas))
	for i, a := range areas {
		radii[i] = st.px(math.Sqrt(a/math.Pi)) / float64(min(width, height))
	}
	const radiusCol = "marker radius"
	b.Add(radiusCol, radii)
	layer.Size = radiusCol

	p := gg.NewPlot(b.Done())
	for i, aes := range []string{"x", "y"} {
		s := gg.NewLinearScaler().SetMin(0)
		if m := data.max(i); m > 0 {
			s.SetMax(m)
		}
		p.SetScale(aes, s)
		p.Add(gg.AxisLabel(aes, data.Labels[i]))
	}
	size := gg.NewLinearScaler().SetMin(0).SetMax(1)
	size.Ranger(gg.NewFloatRanger(0, 1))
	p.SetScale("size", size)

	if len(data.Series) > 2 {
		layer.Color = data.Labels[2]
		s := gg.NewLinearScaler().SetMin(0)
		if m := data.max(2); m > 0 {
			s.SetMax(m)
		}
		s.Ranger(ColormapRanger{cm})
		p.SetScale("stroke", s)
	}

	p.Add(layer)
	if opts.Title != "" {
		p.Add(gg.Title(opts.Title))
	}
	return p.WriteSVG(w, width, height)
}
