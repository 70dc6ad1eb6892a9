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
	"github.com/aspenlab/aspen/grades"
)

// HistOptions controls Histogram.
type HistOptions struct {
	// NumPoints is the number of points the assignment is out
	// of. It must agree with the max score passed to Histogram.
	NumPoints int    `toml:"num_points"`
	Title     string `toml:"title"`
	XLabel    string `toml:"xlabel"`

	// YPadding scales the tallest bar to give the y axis limit.
	// It must be at least 1.
	YPadding float64 `toml:"ypadding"`

	Letters grades.Scale `toml:"letters"`

	// Bins are the score bin edges. If empty, there is one bin
	// per integer score.
	Bins []float64 `toml:"bins"`

	// XTicks and YTicks override the automatic ticks. Ticks
	// outside the data range are dropped. XTickShift moves tick
	// marks (but not their labels) right, typically by half a bin
	// to center them.
	XTicks     []float64 `toml:"xticks"`
	YTicks     []float64 `toml:"yticks"`
	XTickShift float64   `toml:"xtick_shift"`

	ShowLetters      bool `toml:"show_letters"`
	ShowMean         bool `toml:"show_mean"`
	ShowMedian       bool `toml:"show_median"`
	ShowMode         bool `toml:"show_mode"`
	ShowMax          bool `toml:"show_max"`
	CumulativeBars   bool `toml:"cumulative_bars"`
	CumulativeScores bool `toml:"cumulative_scores"`

	CumulativeColor string  `toml:"cumulative_color"`
	LetterFontSize  float64 `toml:"letter_font_size"`
}

// DefaultHistOptions returns options for a 100-point assignment on
// the default letter scale with every annotation enabled.
func DefaultHistOptions() HistOptions {
	return HistOptions{
		NumPoints:        100,
		XLabel:           "Score",
		YPadding:         1.3,
		Letters:          append(grades.Scale(nil), grades.DefaultScale...),
		XTickShift:       0.5,
		ShowLetters:      true,
		ShowMean:         true,
		ShowMedian:       true,
		ShowMode:         true,
		ShowMax:          true,
		CumulativeScores: true,
		CumulativeColor:  "#143257",
		LetterFontSize:   16,
	}
}

// Marker offsets as fractions of the y range.
const (
	statShift   = -0.08
	statRaise   = 0.03
	statStagger = 0.05
)

// Histogram writes an SVG histogram of scores to w. Score bars are
// colored by cm at their left edge relative to the last edge. Behind
// them, translucent letter-grade bars show the fraction of the class
// earning each letter.
func Histogram(w io.Writer, scores []float64, maxScore int, opts HistOptions, cm *colormap.Colormap, st Style) error {
	if maxScore != opts.NumPoints {
		return fmt.Errorf("%w: gradebook max score %d != configured max score %d", grades.ErrInvalidInput, maxScore, opts.NumPoints)
	}
	if maxScore <= 0 {
		return fmt.Errorf("%w: max score must be positive", grades.ErrInvalidInput)
	}
	if opts.YPadding < 1 {
		return fmt.Errorf("%w: y padding factor %g is less than 1", grades.ErrInvalidInput, opts.YPadding)
	}
	if err := opts.Letters.Validate(); err != nil {
		return err
	}
	sum, err := grades.Summarize(scores)
	if err != nil {
		return err
	}
	edges := opts.Bins
	if len(edges) == 0 {
		edges = grades.IntegerEdges(maxScore)
	}
	bars, err := grades.Histogram(scores, edges)
	if err != nil {
		return err
	}
	letters, err := grades.Histogram(scores, opts.Letters.Edges(float64(maxScore)))
	if err != nil {
		return err
	}
	twin := opts.CumulativeBars || opts.CumulativeScores
	var cumColor colormap.RGBA
	if twin {
		if cumColor, err = colormap.Resolve(opts.CumulativeColor); err != nil {
			return err
		}
	}

	barMax := math.Max(bars.MaxFraction(), letters.MaxFraction())
	ymax := opts.YPadding * barMax
	if n := len(opts.YTicks); n > 0 && opts.YTicks[n-1] > ymax {
		ymax = opts.YTicks[n-1]
	}
	if ymax == 0 {
		ymax = 1
	}
	dy := ymax
	xmin, xmax := -0.5, float64(maxScore)+2
	dx := xmax - xmin

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	width, height := st.Size()
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	right := 0.05
	if twin {
		right = 0.12
	}
	left, top := int(0.12*float64(width)), int(0.1*float64(height))
	fw := int((1-0.12-right)*float64(width))
	fh := int(0.76 * float64(height))
	f := newFrame(canvas, &st, left, top, fw, fh, xmin, xmax, 0, ymax)

	// Letter-grade bars, then score bars over them.
	lcolors := make([]colormap.RGBA, letters.Len())
	for i := range lcolors {
		lcolors[i] = cm.At(letters.Edges[i] / float64(maxScore))
		f.rect(letters.Edges[i], letters.Edges[i+1], 0, letters.Fractions[i], fill(lcolors[i], 0.5), `class="letter-bar"`)
	}
	last := bars.Edges[len(bars.Edges)-1]
	for i := 0; i < bars.Len(); i++ {
		f.rect(bars.Edges[i], bars.Edges[i+1], 0, bars.Fractions[i],
			fill(cm.At(bars.Edges[i]/last), 1)+";stroke:black;stroke-width:1", `class="bar"`)
	}

	// Fraction of the class above each letter bar.
	for i, frac := range letters.Fractions {
		col, a := cssColor(lcolors[i])
		f.text(letters.Edges[i], frac+0.015*dy, fmt.Sprintf(" %.2f", frac),
			fmt.Sprintf("font-family:%s;font-size:%.1fpx;fill:%s;fill-opacity:%.3g", st.Font, st.px(8), col, a), `class="letter-frac"`)
	}

	if opts.ShowLetters {
		names := opts.Letters.Ascending()
		for i := 1; i < len(names); i++ {
			f.line(letters.Edges[i], 0, letters.Edges[i], ymax, "stroke:black;stroke-opacity:0.5;stroke-dasharray:6,4", `class="letter-divider"`)
		}
		ypos := (barMax + ymax) / 2
		for i, name := range names {
			xpos := (letters.Edges[i] + letters.Edges[i+1]) / 2
			f.text(xpos, ypos, name,
				fmt.Sprintf("%s;dominant-baseline:central;stroke:#bec1c1;stroke-width:3;paint-order:stroke", textStyle(&st, opts.LetterFontSize, "middle", "black")),
				`class="letter"`)
		}
	}

	f.text(xmin+0.02*dx, 0.925*ymax, fmt.Sprintf("N=%d", sum.N), textStyle(&st, 10, "start", "black"), `class="count"`)

	// Statistic markers sit just below the top of their bin's bar,
	// or just above it if the bar is too short.
	marker := func(x float64) (cx, y float64) {
		i := bars.Bin(x)
		if i < 0 {
			return math.NaN(), 0
		}
		shift := statShift * dy
		if bars.Fractions[i]+shift < 0 {
			shift = statRaise * dy
		}
		return bars.Center(i), bars.Fractions[i] + shift
	}
	markStyle := textStyle(&st, 8, "middle", "black")
	if opts.ShowMode {
		for _, m := range sum.Modes {
			if cx, y := marker(m); !math.IsNaN(cx) {
				f.text(cx, y, "M̂", markStyle, `class="mode"`)
			}
		}
	}
	medX := math.NaN()
	if opts.ShowMedian {
		if cx, y := marker(sum.Median); !math.IsNaN(cx) {
			f.text(cx, y, "Q₂", markStyle, `class="median"`)
			medX = cx
		}
	}
	if opts.ShowMean {
		if cx, y := marker(sum.Mean); !math.IsNaN(cx) {
			if cx == medX {
				y += statStagger * dy
			}
			f.text(cx, y, "μ", markStyle, `class="mean"`)
		}
	}

	canvas.Text(left+fw/2, top-int(st.px(st.TickSize)), histTitle(opts, sum), textStyle(&st, 9, "middle", "black"), `class="title"`)

	// Ticks.
	xticks := opts.XTicks
	if len(xticks) == 0 {
		xticks = autoTicks(scale.Linear{Min: xmin, Max: xmax}, 8)
	}
	f.xTicks(within(xticks, 0, float64(maxScore)), opts.XTickShift, formatInt)
	yticks := opts.YTicks
	if len(yticks) == 0 {
		yticks = autoTicks(f.y, 6)
	}
	f.yTicks(within(yticks, 0, math.Min(1, ymax)), false, "black", formatFloat)
	f.xLabel(opts.XLabel)
	f.yLabel("Fraction of the Class", false, "black")

	if twin {
		col, _ := cssColor(cumColor)
		cf := newFrame(canvas, &st, left, top, fw, fh, xmin, xmax, 0, 1.1)
		cf.yTicks([]float64{0, 0.2, 0.4, 0.6, 0.8, 1}, true, col, formatFloat)
		cf.yLabel("Cumulative Class Fraction", true, col)
		canvas.Line(left+fw, top, left+fw, top+fh, tickStyle(&st, col))

		lineStyle := fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:0.5;stroke-width:%.2f", col, st.px(st.LineWidth))
		dots := func(xs, ys []float64, class string) {
			r := int(st.px(2.5))
			for i := range xs {
				x, y := cf.px(xs[i]), cf.py(ys[i])
				canvas.Circle(x, y, r, "fill:white")
				canvas.Circle(x, y, r, fmt.Sprintf("fill:%s;fill-opacity:0.5", col), fmt.Sprintf(`class="%s"`, class))
			}
		}
		if opts.CumulativeBars {
			centers := make([]float64, bars.Len())
			for i := range centers {
				centers[i] = bars.Center(i)
			}
			cf.polyline(centers, bars.Cumulative, lineStyle, `class="cumulative-bars"`)
			dots(centers, bars.Cumulative, "cumulative-bar-point")
		}
		if opts.CumulativeScores {
			xs, fracs := grades.CumulativeScores(scores)
			for i := range xs {
				xs[i] += opts.XTickShift
			}
			cf.polyline(append([]float64{xs[0]}, xs...), append([]float64{0}, fracs...), lineStyle, `class="cumulative-scores"`)
			dots(xs, fracs, "cumulative-score-point")
		}
	}

	f.border()
	canvas.End()
	return ew.err
}

// histTitle appends the requested statistics to the title.
func histTitle(opts HistOptions, sum grades.Summary) string {
	var parts []string
	if opts.Title != "" {
		parts = append(parts, opts.Title)
	}
	if opts.ShowMean {
		parts = append(parts, fmt.Sprintf("Mean μ: %.1f", sum.Mean))
	}
	if opts.ShowMedian {
		parts = append(parts, fmt.Sprintf("Median Q₂: %.1f", sum.Median))
	}
	if opts.ShowMode {
		label := "Mode"
		if len(sum.Modes) > 1 {
			label = "Modes"
		}
		modes := make([]string, len(sum.Modes))
		for i, m := range sum.Modes {
			modes[i] = fmt.Sprint(int(m))
		}
		parts = append(parts, fmt.Sprintf("%s M̂: %s", label, strings.Join(modes, ", ")))
	}
	if opts.ShowMax {
		parts = append(parts, fmt.Sprintf("Max: %d (%d)", int(sum.Max), sum.MaxCount))
	}
	return strings.Join(parts, " , ")
}
