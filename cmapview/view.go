// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/aspenlab/aspen/colormap"
)

// A row is one line of the display: a label followed by a color bar.
type row struct {
	label string

	// at gives the color at each position of the bar, from 0 at
	// the left to 1 at the right. If at is nil, the row is just
	// its label.
	at func(x float64) colormap.RGBA

	// width is the width of the bar in cells, or 0 to fill the
	// rest of the line.
	width int

	// note is drawn after the bar.
	note string
}

const swatchWidth = 6

type view struct {
	screen tcell.Screen
	rows   []row
	top    int // index of the first visible row
}

func newView(screen tcell.Screen, rows []row) *view {
	return &view{screen: screen, rows: rows}
}

// labelWidth returns the width of the label column.
func (v *view) labelWidth() int {
	w, _ := v.screen.Size()
	lw := 0
	for _, r := range v.rows {
		lw = max(lw, len(r.label))
	}
	return min(lw+2, w/3)
}

func (v *view) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	lw := v.labelWidth()
	for y := 0; y < h && v.top+y < len(v.rows); y++ {
		r := v.rows[v.top+y]
		style := tcell.StyleDefault
		if r.at == nil {
			style = style.Bold(true)
		}
		drawString(v.screen, 0, y, lw, r.label, style)
		if r.at == nil {
			continue
		}
		bw := w - lw - 1
		if r.width > 0 {
			bw = min(bw, r.width)
		}
		for i := 0; i < bw; i++ {
			c := r.at((float64(i) + 0.5) / float64(bw))
			v.screen.SetContent(lw+i, y, ' ', nil, tcell.StyleDefault.Background(cellColor(c)))
		}
		if r.note != "" {
			drawString(v.screen, lw+bw+1, y, w-lw-bw-1, r.note, tcell.StyleDefault)
		}
	}
	v.screen.Show()
}

// drawString draws s at x, y, truncated to width cells.
func drawString(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		if i >= width {
			break
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// cellColor returns c composited over black.
func cellColor(c colormap.RGBA) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// scroll moves the view down by n rows, or up if n is negative.
func (v *view) scroll(n int) {
	_, h := v.screen.Size()
	v.top = max(0, min(v.top+n, len(v.rows)-h))
}

// handle applies ev to the view and reports whether to keep running.
func (v *view) handle(ev tcell.Event) bool {
	_, h := v.screen.Size()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.scroll(-1)
		case tcell.KeyDown:
			v.scroll(1)
		case tcell.KeyPgUp:
			v.scroll(-h)
		case tcell.KeyPgDn:
			v.scroll(h)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'k':
				v.scroll(-1)
			case 'j':
				v.scroll(1)
			}
		}
	case *tcell.EventResize:
		v.scroll(0)
		v.screen.Sync()
	}
	return true
}

// run draws the view and handles events until the user quits.
func (v *view) run() {
	v.draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil || !v.handle(ev) {
			return
		}
		v.draw()
	}
}
