// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	// ErrInvalidInput is returned when a colormap or palette is
	// requested with arguments that cannot produce one, such as
	// fewer than two colors.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnresolvableColor is returned when a color specification
	// is neither a hex color nor a known color name.
	ErrUnresolvableColor = errors.New("unresolvable color")

	// ErrDuplicate is returned when registering a colormap under
	// a name that is already taken.
	ErrDuplicate = errors.New("duplicate registration")
)

// A ColorError records a color specification that could not be
// resolved.
type ColorError struct {
	Spec string
	Err  error // underlying parse error, if any
}

func (e *ColorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot resolve color %q: %v", e.Spec, e.Err)
	}
	return fmt.Sprintf("cannot resolve color %q", e.Spec)
}

func (e *ColorError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnresolvableColor}
	}
	return []error{ErrUnresolvableColor, e.Err}
}

// A Resolver maps a color specification to an RGBA color.
type Resolver interface {
	Resolve(spec string) (RGBA, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(spec string) (RGBA, error)

func (f ResolverFunc) Resolve(spec string) (RGBA, error) {
	return f(spec)
}

// DefaultResolver understands "#rgb", "#rrggbb" and "#rrggbbaa" hex
// colors, CSS color names, the single-letter base colors (b, g, r, c,
// m, y, k, w), and "none". Matching is case-insensitive. Colors
// without an alpha component are opaque.
var DefaultResolver Resolver = ResolverFunc(resolve)

// Resolve resolves spec using DefaultResolver.
func Resolve(spec string) (RGBA, error) {
	return DefaultResolver.Resolve(spec)
}

// MustResolve is like Resolve, but panics if spec cannot be resolved.
// It is meant for color literals in package-level tables.
func MustResolve(spec string) RGBA {
	c, err := Resolve(spec)
	if err != nil {
		panic(err)
	}
	return c
}

var baseColors = map[string]RGBA{
	"b":    {0, 0, 1, 1},
	"g":    {0, 0.5, 0, 1},
	"r":    {1, 0, 0, 1},
	"c":    {0, 0.75, 0.75, 1},
	"m":    {0.75, 0, 0.75, 1},
	"y":    {0.75, 0.75, 0, 1},
	"k":    {0, 0, 0, 1},
	"w":    {1, 1, 1, 1},
	"none": {0, 0, 0, 0},
}

func resolve(spec string) (RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if strings.HasPrefix(s, "#") {
		return resolveHex(spec, s)
	}
	if c, ok := baseColors[s]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return RGBA{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255}, nil
	}
	return RGBA{}, &ColorError{Spec: spec}
}

func resolveHex(spec, s string) (RGBA, error) {
	for _, r := range s[1:] {
		if !('0' <= r && r <= '9' || 'a' <= r && r <= 'f') {
			return RGBA{}, &ColorError{Spec: spec, Err: fmt.Errorf("bad hex digit %q", r)}
		}
	}

	alpha := 1.0
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return RGBA{}, &ColorError{Spec: spec, Err: err}
		}
		alpha = float64(a) / 255
		s = s[:7]
	default:
		return RGBA{}, &ColorError{Spec: spec, Err: fmt.Errorf("hex color has %d digits", len(s)-1)}
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, &ColorError{Spec: spec, Err: err}
	}
	// Round trip through 8-bit channels so every spelling of a
	// color lands on exactly x/255.
	r, g, b := c.RGB255()
	return RGBA{float64(r) / 255, float64(g) / 255, float64(b) / 255, alpha}, nil
}

// resolveAll resolves each spec with r, stopping at the first error.
func resolveAll(r Resolver, specs []string) ([]RGBA, error) {
	out := make([]RGBA, len(specs))
	for i, spec := range specs {
		c, err := r.Resolve(spec)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
