// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	for _, test := range []struct {
		spec string
		want RGBA
	}{
		{"#000000", RGBA{0, 0, 0, 1}},
		{"#FFFFFF", RGBA{1, 1, 1, 1}},
		{"#ff000080", RGBA{1, 0, 0, 128.0 / 255}},
		{"#CF3339", RGBA{0xcf / 255.0, 0x33 / 255.0, 0x39 / 255.0, 1}},
		{"#f00", RGBA{1, 0, 0, 1}},
		{"#abc", RGBA{0xaa / 255.0, 0xbb / 255.0, 0xcc / 255.0, 1}},
		{"  navy ", RGBA{0, 0, 128.0 / 255, 1}},
		{"White", RGBA{1, 1, 1, 1}},
		{"k", RGBA{0, 0, 0, 1}},
		{"g", RGBA{0, 0.5, 0, 1}},
		{"none", RGBA{0, 0, 0, 0}},
	} {
		got, err := Resolve(test.spec)
		if err != nil {
			t.Errorf("Resolve(%q): %v", test.spec, err)
			continue
		}
		if got != test.want {
			t.Errorf("Resolve(%q) = %v; want %v", test.spec, got, test.want)
		}
	}
}

func TestResolveSameColor(t *testing.T) {
	// Every spelling of a color resolves to the same quadruple.
	for _, specs := range [][]string{
		{"#ffffff", "#FFF", "white", "w", "#ffffffff"},
		{"#000080", "navy", "#000080FF"},
		{"#ff0000", "red", "r", "#f00"},
	} {
		want := MustResolve(specs[0])
		for _, spec := range specs[1:] {
			if got := MustResolve(spec); got != want {
				t.Errorf("Resolve(%q) = %v; want %v (from %q)", spec, got, want, specs[0])
			}
		}
	}
}

func TestResolveError(t *testing.T) {
	for _, spec := range []string{"", "#", "#12", "#12345", "#1234567", "#gggggg", "#ff00zz80", "notacolor", "tab:blue"} {
		_, err := Resolve(spec)
		if !errors.Is(err, ErrUnresolvableColor) {
			t.Errorf("Resolve(%q): got error %v; want ErrUnresolvableColor", spec, err)
		}
		var ce *ColorError
		if !errors.As(err, &ce) || ce.Spec != spec {
			t.Errorf("Resolve(%q): error %v does not record the spec", spec, err)
		}
	}
}

func TestColorErrorUnwrap(t *testing.T) {
	parse := errors.New("bad digit")
	err := error(&ColorError{Spec: "#12", Err: parse})
	if !errors.Is(err, ErrUnresolvableColor) || !errors.Is(err, parse) {
		t.Errorf("%v does not wrap both ErrUnresolvableColor and the parse error", err)
	}
	err = &ColorError{Spec: "nope"}
	if !errors.Is(err, ErrUnresolvableColor) {
		t.Errorf("%v does not wrap ErrUnresolvableColor", err)
	}
}

func TestRGBAColor(t *testing.T) {
	c := RGBA{1, 0.5, 0, 0.5}
	r, g, b, a := c.RGBA()
	if r != 0x8000 || g != 0x4000 || b != 0 || a != 0x8000 {
		t.Errorf("RGBA() = %#x %#x %#x %#x; want premultiplied 0x8000 0x4000 0 0x8000", r, g, b, a)
	}
	if got, want := MustResolve("#CF3339").Hex(), "#cf3339"; got != want {
		t.Errorf("Hex() = %s; want %s", got, want)
	}
	if got, want := MustResolve("#CF333980").Hex(), "#cf333980"; got != want {
		t.Errorf("Hex() = %s; want %s", got, want)
	}
}
