// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"encoding/xml"
	"io"
	"reflect"
	"testing"

	"github.com/aspenlab/aspen/colormap"
)

// An elem is an SVG element with its class and text content.
type elem struct {
	name, class, text string
}

// parseSVG parses an SVG document into a flat list of elements.
func parseSVG(t *testing.T, data []byte) []elem {
	t.Helper()
	var out []elem
	var stack []int
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("malformed SVG: %v", err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			e := elem{name: tok.Name.Local}
			for _, a := range tok.Attr {
				if a.Name.Local == "class" {
					e.class = a.Value
				}
			}
			stack = append(stack, len(out))
			out = append(out, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				out[stack[len(stack)-1]].text += string(tok)
			}
		}
	}
	if len(out) == 0 || out[0].name != "svg" {
		t.Fatalf("not an SVG document")
	}
	return out
}

// byClass returns the elements with the given class.
func byClass(elems []elem, class string) []elem {
	var out []elem
	for _, e := range elems {
		if e.class == class {
			out = append(out, e)
		}
	}
	return out
}

func testColormap() *colormap.Colormap {
	return colormap.MustBuild([]string{"#CF3339", "#BEC1C1", "#143257"}, colormap.Options{N: 64, Name: "test"})
}

func TestWithin(t *testing.T) {
	got := within([]float64{-1, 0, 0.5, 1, 2}, 0, 1)
	if want := []float64{0, 0.5, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestFormat(t *testing.T) {
	for _, test := range []struct {
		x    float64
		want string
	}{
		{0, "0"}, {0.2, "0.2"}, {0.25, "0.25"}, {1, "1"}, {0.125, "0.12"},
	} {
		if got := formatFloat(test.x); got != test.want {
			t.Errorf("formatFloat(%g) = %q; want %q", test.x, got, test.want)
		}
	}
	if got := formatInt(7.9); got != "7" {
		t.Errorf("formatInt(7.9) = %q; want 7", got)
	}
}

func TestCSSColor(t *testing.T) {
	col, a := cssColor(colormap.RGBA{R: 1, G: 0, B: 0, A: 0.5})
	if col != "#ff0000" {
		t.Errorf("got color %q; want #ff0000", col)
	}
	if a < 0.49 || a > 0.51 {
		t.Errorf("got opacity %g; want 0.5", a)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, io.ErrShortWrite
}

func TestErrWriter(t *testing.T) {
	ew := &errWriter{w: failWriter{}}
	ew.Write([]byte("a"))
	if _, err := ew.Write([]byte("b")); err != io.ErrShortWrite {
		t.Errorf("got %v; want %v", err, io.ErrShortWrite)
	}
}
