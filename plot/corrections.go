// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/aspenlab/aspen/colormap"
	"github.com/aspenlab/aspen/grades"
	"github.com/aspenlab/aspen/palettes"
)

// CorrectionOptions controls Corrections.
type CorrectionOptions struct {
	Questions int          `toml:"questions"`
	Frac      float64      `toml:"frac"`
	Letters   grades.Scale `toml:"letters"`
	Title     string       `toml:"title"`

	// Offset pads the shaded bands so that they enclose the
	// markers on their boundaries.
	Offset     float64 `toml:"offset"`
	ShadeAlpha float64 `toml:"shade_alpha"`
}

// DefaultCorrectionOptions returns options for a 10-question quiz
// graded on a 9/8/7/6 scale with half of the missed points returned.
func DefaultCorrectionOptions() CorrectionOptions {
	return CorrectionOptions{
		Questions: 10,
		Frac:      0.5,
		Letters: grades.Scale{
			{Name: "A", Min: 9},
			{Name: "B", Min: 8},
			{Name: "C", Min: 7},
			{Name: "D", Min: 6},
			{Name: "F", Min: 0},
		},
		Offset:     0.5,
		ShadeAlpha: 0.3,
	}
}

// Corrections writes a two-panel SVG showing how returning points
// for quiz corrections changes scores and letter grades.
//
// Both panels plot the new score against the original score, with
// and without corrections. The left panel shades the bands where
// the letter grade is unchanged and where it improves by one or
// more letters; overlapping bands darken with each extra letter. The
// right panel shades the region that maps to each new letter grade.
//
// The two series take the first two colors of st's color cycle.
func Corrections(w io.Writer, opts CorrectionOptions, st Style) error {
	c, err := grades.NewCorrections(opts.Questions, opts.Frac)
	if err != nil {
		return err
	}
	if err := opts.Letters.Validate(); err != nil {
		return err
	}
	b := grades.Boundaries(opts.Letters, opts.Questions)
	for i := 1; i < len(b); i++ {
		if !(b[i-1] < b[i]) {
			return fmt.Errorf("%w: grade boundary %g is not below the number of questions %d", grades.ErrInvalidInput, b[i-1], opts.Questions)
		}
	}
	m := len(b)
	off := opts.Offset

	cycle := st.Cycle()
	plain, corrected := cycle.Next(), cycle.Next()

	lo, hi := math.Min(0, b[0])-off, float64(opts.Questions)+off
	pad := 0.05 * (hi - lo)
	lo, hi = lo-pad, hi+pad

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	st.FigWidth, st.FigHeight = 12, 6
	width, height := st.Size()
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	left, top := int(0.08*float64(width)), int(0.1*float64(height))
	pw, ph := int(0.445*float64(width)), int(0.78*float64(height))
	panels := [2]*frame{
		newFrame(canvas, &st, left, top, pw, ph, lo, hi, lo, hi),
		newFrame(canvas, &st, left+pw, top, pw, ph, lo, hi, lo, hi),
	}
	shade := func(f *frame, name string, x0, x1, y0, y1 float64, class string) {
		col, _ := palettes.SMC.Get(name)
		f.rect(x0, x1, y0, y1, fill(col, opts.ShadeAlpha), fmt.Sprintf(`class="%s"`, class))
	}
	label := func(f *frame, x, y float64, s string, size float64, class string) {
		f.text(x, y, s, textStyle(&st, size, "start", "white")+";dominant-baseline:hanging", fmt.Sprintf(`class="%s"`, class))
	}
	// labelY is the top of the idx'th label from the top.
	labelY := func(idx int) float64 {
		y := b[m-1-idx] - 2*off
		if idx == 0 {
			y += 2 * off
		}
		return y
	}

	// Left panel: unchanged and improved letter grades.
	p := panels[0]
	for g := 0; g < m-1; g++ {
		x1, y1 := b[g+1]-off, b[g+1]-off
		if g == m-2 {
			x1 += 2 * off
			y1 += 2 * off
		}
		shade(p, "sun", b[g]-off, x1, b[g]-off, y1, "unchanged")
	}
	for boost := 1; boost < len(opts.Letters); boost++ {
		for g := 0; g+boost < m-1; g++ {
			shade(p, "water", b[g]-off, b[g+1]-off, b[g+boost]-off, b[m-1]+off, "improved")
		}
	}
	for idx := range opts.Letters {
		label(p, b[0]-off/2, labelY(idx), fmt.Sprintf("+%d grade change", m-2-idx), 12, "change-label")
	}

	// Right panel: the new letter grade.
	p = panels[1]
	{
		x1, y1 := b[1]-off, b[1]-off
		if m == 2 {
			x1 += 2 * off
			y1 += 2 * off
		}
		shade(p, "garden", b[0]-off, x1, b[0]-off, y1, "kept")
	}
	for shift := 0; shift < m-2; shift++ {
		for g := shift; g < m-2; g++ {
			x1, y1 := b[g+2]-off, b[g+2]-off
			if g == m-3 {
				x1 += 2 * off
				y1 += 2 * off
			}
			shade(p, "bay", b[0]-off, x1, b[g+1]-off, y1, "new-grade")
		}
	}
	for idx, l := range opts.Letters {
		label(p, b[0]-off/2, labelY(idx), l.Name, 15, "grade-label")
	}

	// Both panels: the scores themselves, over the shading.
	for i, f := range panels {
		series(f, c.Original, c.Original, plain, "no-corrections")
		series(f, c.Original, c.New, corrected, "with-corrections")
		f.xTicks(autoTicks(f.x, 8), 0, formatInt)
		f.xLabel("Original Score")
		if i == 0 {
			f.yTicks(autoTicks(f.y, 8), false, "black", formatInt)
			f.yLabel("New Score", false, "black")
		}
		f.border()
	}
	legend(panels[0], []string{"No Corrections", "With Corrections"}, []colormap.RGBA{plain, corrected})

	titleY := top - int(st.px(st.TickSize))
	canvas.Text(left+pw/2, titleY, opts.Title, textStyle(&st, 10, "middle", "black"), `class="title"`)
	canvas.Text(left+pw+pw/2, titleY, fmt.Sprintf("Possible points returned: %.1f%%", opts.Frac*100),
		textStyle(&st, 10, "middle", "black"), `class="title"`)

	canvas.End()
	return ew.err
}

// series draws a line with a marker at each point.
func series(f *frame, xs, ys []float64, c colormap.RGBA, class string) {
	st := f.style
	col, _ := cssColor(c)
	f.polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.2f", col, st.px(st.LineWidth)), fmt.Sprintf(`class="%s"`, class))
	r := int(st.px(3))
	for i := range xs {
		f.canvas.Circle(f.px(xs[i]), f.py(ys[i]), r, "fill:"+col)
	}
}

// legend draws a key in the lower right corner of f.
func legend(f *frame, labels []string, colors []colormap.RGBA) {
	st := f.style
	size := st.px(9)
	lh := int(1.6 * size)
	x := f.left + f.width - int(12*size)
	y := f.top + f.height - lh*len(labels) - int(size)
	f.canvas.Rect(x-int(size/2), y-int(size/2), int(12*size), lh*len(labels)+int(size/2),
		"fill:white;stroke:#cccccc", `class="legend"`)
	for i, l := range labels {
		col, _ := cssColor(colors[i])
		ly := y + i*lh + lh/2
		f.canvas.Line(x, ly, x+int(2*size), ly, fmt.Sprintf("stroke:%s;stroke-width:%.2f", col, st.px(st.LineWidth)))
		f.canvas.Text(x+int(2.5*size), ly+int(size/3), l, textStyle(st, 9, "start", "black"))
	}
}
