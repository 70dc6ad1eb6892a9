// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package measure formats measured values and their uncertainties.
package measure

import (
	"fmt"
	"math"
	"strconv"
)

// ScientificNotation returns coef and exp such that x = coef × 10^exp
// and 1 ≤ |coef| < 10. For x == 0 it returns 0, 0. It returns an
// error if x is infinite or NaN.
func ScientificNotation(x float64) (coef float64, exp int, err error) {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, 0, fmt.Errorf("%g is not finite", x)
	}
	if x == 0 {
		return 0, 0, nil
	}
	exp = int(math.Floor(math.Log10(math.Abs(x))))
	coef = x / math.Pow10(exp)
	// Log10 may be off by one ulp near powers of ten.
	if math.Abs(coef) >= 10 {
		exp++
		coef = x / math.Pow10(exp)
	} else if math.Abs(coef) < 1 {
		exp--
		coef = x / math.Pow10(exp)
	}
	return coef, exp, nil
}

// RoundUncertainty rounds unc to one significant figure, or to two if
// its leading digit is 1 or 2, and rounds best to the same decimal
// place.
func RoundUncertainty(best, unc float64) (float64, float64, error) {
	places, err := uncertaintyPlaces(best, unc)
	if err != nil {
		return 0, 0, err
	}
	return Round(best, places), Round(unc, places), nil
}

// uncertaintyPlaces returns the decimal place to which RoundUncertainty
// rounds.
func uncertaintyPlaces(best, unc float64) (int, error) {
	coef, exp, err := ScientificNotation(unc)
	if err != nil {
		return 0, fmt.Errorf("uncertainty: %w", err)
	}
	if math.IsInf(best, 0) || math.IsNaN(best) {
		return 0, fmt.Errorf("best estimate %g is not finite", best)
	}
	if math.Floor(coef) > 2 {
		return -exp, nil
	}
	return 1 - exp, nil
}

// Round rounds x to the given number of decimal places, which may be
// negative to round to the left of the decimal point. Ties round to
// even.
func Round(x float64, places int) float64 {
	if places >= 0 {
		// FormatFloat rounds the exact binary value correctly.
		r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
		return r
	}
	p := math.Pow10(-places)
	return math.RoundToEven(x/p) * p
}

// Format returns best ± unc rounded by RoundUncertainty, printed to
// the matching number of decimal places.
func Format(best, unc float64) (string, error) {
	places, err := uncertaintyPlaces(best, unc)
	if err != nil {
		return "", err
	}
	b, u := Round(best, places), Round(unc, places)
	if places < 0 {
		places = 0
	}
	return fmt.Sprintf("%.*f ± %.*f", places, b, places, u), nil
}
