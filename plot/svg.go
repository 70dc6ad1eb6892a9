// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aclements/go-moremath/scale"
	svg "github.com/ajstarks/svgo"

	"github.com/aspenlab/aspen/colormap"
)

// errWriter remembers the first write error, since svg.SVG discards
// them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// A frame maps data coordinates to a rectangle of the canvas.
type frame struct {
	canvas *svg.SVG
	style  *Style

	x, y scale.Linear

	left, top, width, height int
}

func newFrame(canvas *svg.SVG, st *Style, left, top, width, height int, xmin, xmax, ymin, ymax float64) *frame {
	return &frame{
		canvas: canvas,
		style:  st,
		x:      scale.Linear{Min: xmin, Max: xmax},
		y:      scale.Linear{Min: ymin, Max: ymax},
		left:   left,
		top:    top,
		width:  width,
		height: height,
	}
}

func (f *frame) px(x float64) int {
	return f.left + int(math.Round(mapUnit(f.x, x)*float64(f.width)))
}

func (f *frame) py(y float64) int {
	return f.top + f.height - int(math.Round(mapUnit(f.y, y)*float64(f.height)))
}

// mapUnit maps x to [0, 1] on s, tolerating an empty domain.
func mapUnit(s scale.Linear, x float64) float64 {
	if s.Max == s.Min {
		return 0.5
	}
	return s.Map(x)
}

// rect fills the data-space rectangle [x0, x1] x [y0, y1]. Like the
// other drawing methods, s is passed through to the canvas as styles
// and attributes.
func (f *frame) rect(x0, x1, y0, y1 float64, s ...string) {
	l, r := f.px(x0), f.px(x1)
	t, b := f.py(y1), f.py(y0)
	if r < l {
		l, r = r, l
	}
	if b < t {
		t, b = b, t
	}
	f.canvas.Rect(l, t, r-l, b-t, s...)
}

func (f *frame) line(x0, y0, x1, y1 float64, s ...string) {
	f.canvas.Line(f.px(x0), f.py(y0), f.px(x1), f.py(y1), s...)
}

func (f *frame) polyline(xs, ys []float64, s ...string) {
	pxs, pys := make([]int, len(xs)), make([]int, len(ys))
	for i := range xs {
		pxs[i], pys[i] = f.px(xs[i]), f.py(ys[i])
	}
	f.canvas.Polyline(pxs, pys, s...)
}

func (f *frame) text(x, y float64, t string, s ...string) {
	f.canvas.Text(f.px(x), f.py(y), t, s...)
}

// border draws the frame's outline.
func (f *frame) border() {
	f.canvas.Rect(f.left, f.top, f.width, f.height,
		fmt.Sprintf("fill:none;stroke:black;stroke-width:%.2f", f.style.px(f.style.AxesWidth)))
}

// xTicks draws tick marks and labels along the bottom edge. Labels
// are placed at tick+shift but read tick.
func (f *frame) xTicks(ticks []float64, shift float64, format func(float64) string) {
	st := f.style
	tl := int(st.px(st.TickLen) / 2)
	bottom := f.top + f.height
	for _, t := range ticks {
		x := f.px(t + shift)
		f.canvas.Line(x, bottom-tl, x, bottom+tl, tickStyle(st, "black"))
		f.canvas.Text(x, bottom+tl+int(st.px(st.TickSize)), format(t), textStyle(st, st.TickSize, "middle", "black"))
	}
}

// yTicks draws tick marks and labels along the left edge, or the
// right edge if right is set.
func (f *frame) yTicks(ticks []float64, right bool, col string, format func(float64) string) {
	st := f.style
	tl := int(st.px(st.TickLen) / 2)
	edge, anchor, dx := f.left, "end", -tl-4
	if right {
		edge, anchor, dx = f.left+f.width, "start", tl+4
	}
	for _, t := range ticks {
		y := f.py(t)
		f.canvas.Line(edge-tl, y, edge+tl, y, tickStyle(st, col))
		f.canvas.Text(edge+dx, y+int(st.px(st.TickSize)/3), format(t), textStyle(st, st.TickSize, anchor, col))
	}
}

// xLabel and yLabel draw axis labels outside the frame.
func (f *frame) xLabel(label string) {
	st := f.style
	y := f.top + f.height + int(st.px(st.TickLen)+2.4*st.px(st.LabelSize))
	f.canvas.Text(f.left+f.width/2, y, label, textStyle(st, st.LabelSize, "middle", "black"))
}

func (f *frame) yLabel(label string, right bool, col string) {
	st := f.style
	off := int(st.px(st.TickLen) + 3.2*st.px(st.TickSize))
	x, rot := f.left-off, -90
	if right {
		x, rot = f.left+f.width+off, 90
	}
	y := f.top + f.height/2
	f.canvas.Text(x, y, label,
		fmt.Sprintf("%s;transform:rotate(%ddeg);transform-origin:%dpx %dpx", textStyle(st, st.LabelSize, "middle", col), rot, x, y))
}

// autoTicks returns up to max "nice" ticks covering s's domain.
func autoTicks(s scale.Linear, max int) []float64 {
	major, _ := s.Ticks(scale.TickOptions{Max: max})
	return major
}

// within returns the elements of xs in [lo, hi].
func within(xs []float64, lo, hi float64) []float64 {
	var out []float64
	for _, x := range xs {
		if lo <= x && x <= hi {
			out = append(out, x)
		}
	}
	return out
}

func tickStyle(st *Style, col string) string {
	return fmt.Sprintf("stroke:%s;stroke-width:%.2f", col, st.px(st.AxesWidth))
}

func textStyle(st *Style, size float64, anchor, col string) string {
	return fmt.Sprintf("font-family:%s;font-size:%.1fpx;text-anchor:%s;fill:%s", st.Font, st.px(size), anchor, col)
}

// cssColor returns c as a CSS color and its opacity.
func cssColor(c colormap.RGBA) (string, float64) {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), float64(n.A) / 255
}

// fill returns a CSS fill declaration for c at the given opacity
// multiplier.
func fill(c colormap.RGBA, opacity float64) string {
	col, a := cssColor(c)
	return fmt.Sprintf("fill:%s;fill-opacity:%.3g", col, a*opacity)
}

func formatInt(x float64) string {
	return fmt.Sprintf("%d", int(x))
}

func formatFloat(x float64) string {
	s := fmt.Sprintf("%.2f", x)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
