// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import "fmt"

// A Cycle is an endless sequence that repeats a fixed list of colors.
// The zero Cycle is not usable; create one with NewCycle or
// Palette.Cycle.
type Cycle struct {
	colors []RGBA
	next   int
}

// NewCycle returns a cycle over colors.
func NewCycle(colors ...RGBA) (*Cycle, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("%w: empty color cycle", ErrInvalidInput)
	}
	return &Cycle{colors: append([]RGBA(nil), colors...)}, nil
}

// Len returns the period of the cycle.
func (c *Cycle) Len() int {
	return len(c.colors)
}

// At returns the i'th color of the cycle. i may be any non-negative
// integer.
func (c *Cycle) At(i int) RGBA {
	return c.colors[i%len(c.colors)]
}

// Next returns the next color of the cycle and advances it.
func (c *Cycle) Next() RGBA {
	col := c.colors[c.next]
	c.next = (c.next + 1) % len(c.colors)
	return col
}

// Reset restarts the cycle at its first color.
func (c *Cycle) Reset() {
	c.next = 0
}
