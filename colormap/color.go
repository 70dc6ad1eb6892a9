// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA is a color as four float channels, each in [0, 1]. The color
// channels are not alpha-premultiplied.
//
// RGBA implements color.Color, so it can be handed directly to
// image and plotting code.
type RGBA struct {
	R, G, B, A float64
}

// Opaque returns the opaque color with the given channels.
func Opaque(r, g, b float64) RGBA {
	return RGBA{r, g, b, 1}
}

// RGBA implements color.Color. It returns alpha-premultiplied 16-bit
// channels.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	al := clamp01(c.A)
	r = uint32(clamp01(c.R)*al*0xffff + 0.5)
	g = uint32(clamp01(c.G)*al*0xffff + 0.5)
	b = uint32(clamp01(c.B)*al*0xffff + 0.5)
	a = uint32(al*0xffff + 0.5)
	return
}

// NRGBA returns c as an 8-bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{to8(c.R), to8(c.G), to8(c.B), to8(c.A)}
}

// Hex returns c as "#rrggbb", or "#rrggbbaa" if c is not opaque.
func (c RGBA) Hex() string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func (c RGBA) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// channel returns the i'th channel of c in R, G, B, A order.
func (c RGBA) channel(i int) float64 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	}
	return c.A
}

func (c *RGBA) setChannel(i int, v float64) {
	switch i {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	default:
		c.A = v
	}
}

func clamp01(x float64) float64 {
	if x <= 0 || math.IsNaN(x) {
		return 0
	} else if x >= 1 {
		return 1
	}
	return x
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}
