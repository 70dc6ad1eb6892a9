// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"math"
	"testing"
)

func TestScientificNotation(t *testing.T) {
	for _, test := range []struct {
		x    float64
		coef float64
		exp  int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{1000, 1, 3},
		{12345, 1.2345, 4},
		{-0.00321, -3.21, -3},
		{6.02214076e23, 6.02214076, 23},
	} {
		coef, exp, err := ScientificNotation(test.x)
		if err != nil {
			t.Errorf("ScientificNotation(%g): %v", test.x, err)
			continue
		}
		if coef != test.coef || exp != test.exp {
			t.Errorf("ScientificNotation(%g) = %g, %d; want %g, %d", test.x, coef, exp, test.coef, test.exp)
		}
	}

	// Every nonzero coefficient is in [1, 10).
	for _, x := range []float64{999.9999999999999, 1e-300, 9.99e100, -1e15, 0.1} {
		coef, exp, err := ScientificNotation(x)
		if err != nil || math.Abs(coef) < 1 || math.Abs(coef) >= 10 {
			t.Errorf("ScientificNotation(%g) = %g, %d, %v", x, coef, exp, err)
		}
	}

	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, _, err := ScientificNotation(x); err == nil {
			t.Errorf("ScientificNotation(%g) succeeded", x)
		}
	}
}

func TestRound(t *testing.T) {
	for _, test := range []struct {
		x      float64
		places int
		want   float64
	}{
		{2.71828, 2, 2.72},
		{-0.0456, 3, -0.046},
		{1234.5, -1, 1230},
		{150, -2, 200},
		{250, -2, 200},
		{12.3456, 0, 12},
	} {
		if got := Round(test.x, test.places); got != test.want {
			t.Errorf("Round(%g, %d) = %g; want %g", test.x, test.places, got, test.want)
		}
	}
}

func TestRoundUncertainty(t *testing.T) {
	for _, test := range []struct {
		best, unc         float64
		wantBest, wantUnc float64
	}{
		// Leading digit 1 or 2 keeps two significant figures.
		{9.876, 0.0234, 9.876, 0.023},
		{2.71828, 0.0153, 2.718, 0.015},
		// Otherwise one.
		{12.3456, 0.5, 12.3, 0.5},
		{1234.5, 37, 1230, 40},
	} {
		best, unc, err := RoundUncertainty(test.best, test.unc)
		if err != nil {
			t.Errorf("RoundUncertainty(%g, %g): %v", test.best, test.unc, err)
			continue
		}
		if best != test.wantBest || unc != test.wantUnc {
			t.Errorf("RoundUncertainty(%g, %g) = %g, %g; want %g, %g", test.best, test.unc, best, unc, test.wantBest, test.wantUnc)
		}
	}

	if _, _, err := RoundUncertainty(1, math.NaN()); err == nil {
		t.Errorf("NaN uncertainty accepted")
	}
	if _, _, err := RoundUncertainty(math.Inf(1), 0.1); err == nil {
		t.Errorf("infinite estimate accepted")
	}
}

func TestFormat(t *testing.T) {
	for _, test := range []struct {
		best, unc float64
		want      string
	}{
		{9.876, 0.0234, "9.876 ± 0.023"},
		{12.3456, 0.5, "12.3 ± 0.5"},
		{1234.5, 37, "1230 ± 40"},
	} {
		got, err := Format(test.best, test.unc)
		if err != nil || got != test.want {
			t.Errorf("Format(%g, %g) = %q, %v; want %q", test.best, test.unc, got, err, test.want)
		}
	}
}
