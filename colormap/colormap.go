// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap builds sampled colormaps from lists of colors and
// provides the palette, color cycle, and registry types used to
// organize them.
//
// A colormap is built by linearly interpolating each RGBA channel
// between evenly spaced control colors:
//
//	cm, err := colormap.Build([]string{"#CF3339", "#BEC1C1", "#143257"}, colormap.Options{Name: "smc"})
//
// Building is a pure function of its arguments. Registering a
// colormap by name is an explicit operation on a caller-owned
// Registry.
package colormap

import (
	"fmt"
	"image/color"
	"math"
)

// DefaultSamples is the number of samples Build produces when
// Options.N is zero.
const DefaultSamples = 512

// A Colormap is an immutable, fixed-length sequence of colors indexed
// by a position in [0, 1].
type Colormap struct {
	// Name is the name the colormap is registered under. It may
	// be empty.
	Name string

	// Samples are the colors of the colormap. Samples[0] is
	// position 0 and Samples[len(Samples)-1] is position 1.
	// Callers must not modify Samples.
	Samples []RGBA
}

// Options controls Build.
type Options struct {
	// N is the number of samples. If N is 0, DefaultSamples is
	// used. N must be at least the number of colors.
	N int

	// Left and Right, if non-empty, replace the first and last
	// samples, respectively.
	Left, Right string

	// Name is the name of the resulting colormap.
	Name string

	// Resolver resolves color specifications. If nil,
	// DefaultResolver is used.
	Resolver Resolver
}

// Build returns a colormap of opt.N samples interpolated from colors,
// which are evenly spaced over [0, 1].
//
// Build fails with ErrInvalidInput if there are fewer than two colors
// or fewer samples than colors. It checks this before resolving any
// colors. Color resolution errors are returned as is.
func Build(colors []string, opt Options) (*Colormap, error) {
	n := opt.N
	if n == 0 {
		n = DefaultSamples
	}
	if err := checkCounts(len(colors), n); err != nil {
		return nil, err
	}

	r := opt.Resolver
	if r == nil {
		r = DefaultResolver
	}
	ctrl, err := resolveAll(r, colors)
	if err != nil {
		return nil, err
	}

	var left, right *RGBA
	if opt.Left != "" {
		c, err := r.Resolve(opt.Left)
		if err != nil {
			return nil, err
		}
		left = &c
	}
	if opt.Right != "" {
		c, err := r.Resolve(opt.Right)
		if err != nil {
			return nil, err
		}
		right = &c
	}

	samples, err := Interpolate(ctrl, n)
	if err != nil {
		return nil, err
	}
	if left != nil {
		samples[0] = *left
	}
	if right != nil {
		samples[n-1] = *right
	}
	return &Colormap{Name: opt.Name, Samples: samples}, nil
}

// MustBuild is like Build, but panics on error.
func MustBuild(colors []string, opt Options) *Colormap {
	cm, err := Build(colors, opt)
	if err != nil {
		panic(err)
	}
	return cm
}

func checkCounts(k, n int) error {
	if k < 2 {
		return fmt.Errorf("%w: need at least 2 colors, got %d", ErrInvalidInput, k)
	}
	if n < k {
		return fmt.Errorf("%w: %d samples is fewer than %d colors", ErrInvalidInput, n, k)
	}
	return nil
}

// Interpolate returns n colors sampled evenly over [0, 1] from the
// piecewise-linear curve through ctrl, whose colors are evenly spaced
// over [0, 1]. Each channel is interpolated independently.
//
// Interpolate requires len(ctrl) >= 2 and n >= len(ctrl).
func Interpolate(ctrl []RGBA, n int) ([]RGBA, error) {
	k := len(ctrl)
	if err := checkCounts(k, n); err != nil {
		return nil, err
	}

	out := make([]RGBA, n)
	for i := range out {
		// Position of sample i in control-point units. Computing
		// it from integers keeps samples that land exactly on a
		// control point exact.
		p := float64(i*(k-1)) / float64(n-1)
		j := int(p)
		if j >= k-1 {
			out[i] = ctrl[k-1]
			continue
		}
		t := p - float64(j)
		a, b := ctrl[j], ctrl[j+1]
		for ch := 0; ch < 4; ch++ {
			x, y := a.channel(ch), b.channel(ch)
			out[i].setChannel(ch, x+t*(y-x))
		}
	}
	return out, nil
}

// Len returns the number of samples in cm.
func (cm *Colormap) Len() int {
	return len(cm.Samples)
}

// At returns the sample at position x. Positions are clamped to
// [0, 1]; position x selects sample floor(x*Len()), except that 1
// selects the last sample.
func (cm *Colormap) At(x float64) RGBA {
	n := len(cm.Samples)
	if math.IsNaN(x) || x <= 0 {
		return cm.Samples[0]
	}
	i := int(x * float64(n))
	if i >= n {
		i = n - 1
	}
	return cm.Samples[i]
}

// Map returns the color at position x. Map makes a Colormap a
// continuous palette for plotting libraries.
func (cm *Colormap) Map(x float64) color.Color {
	return cm.At(x)
}

// Colors returns the samples of cm as a slice of color.Color.
func (cm *Colormap) Colors() []color.Color {
	out := make([]color.Color, len(cm.Samples))
	for i, c := range cm.Samples {
		out[i] = c
	}
	return out
}

// Reversed returns a new colormap with the samples of cm in reverse
// order. If cm is named, the result is named with a "_r" suffix.
func (cm *Colormap) Reversed() *Colormap {
	n := len(cm.Samples)
	out := &Colormap{Samples: make([]RGBA, n)}
	for i, c := range cm.Samples {
		out.Samples[n-1-i] = c
	}
	if cm.Name != "" {
		out.Name = cm.Name + "_r"
	}
	return out
}
