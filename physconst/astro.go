// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physconst

// Distances.
const (
	AU        = 149597870700        // astronomical unit, m
	Parsec    = 3.08567758149137e16 // m
	LightYear = 9.4607304725808e15  // m
)

// Day lengths, in seconds. A sidereal day is one full rotation.
const (
	SolarDay    = DayToSecond
	SiderealDay = 23*3600 + 56*60 + 4.0916
)

// The Sun.
const (
	SunMass        = 1.9891e30            // kg
	SunRadius      = 6.957e8              // m
	SunLuminosity  = 3.828e26             // W
	SunDensity     = 1.41e3               // kg/m³
	SunTemperature = 5772                 // effective, K
	SunCoreTemp    = 1.571e7              // K
	SunField       = 1e-4                 // surface magnetic field, T
	SolarConstant  = 1.36e3               // W/m²
	SunMu          = G * SunMass          // standard gravitational parameter, m³/s²
	SunAge         = 4.6e9 * YearToSecond // s
)

// Earth, Jupiter, and the Moon.
const (
	EarthMass    = 5.972e24 // kg
	EarthRadius  = 6.371e6  // m
	EarthField   = 5e-5     // T
	EarthDensity = 5.51e3   // kg/m³

	JupiterMass    = 1.898e27 // kg
	JupiterRadius  = 7.1492e7 // m
	JupiterField   = 4e-4     // T
	JupiterDensity = 1.33e3   // kg/m³

	MoonMass    = 7.34767309e22 // kg
	MoonRadius  = 1.7374e6      // m
	MoonDensity = 3.34e3        // kg/m³
)

// An Orbit gives orbital elements relative to the ecliptic.
type Orbit struct {
	SemiMajorAxis float64 // m
	Eccentricity  float64
	Inclination   float64 // degrees
	Period        float64 // days
	AxialTilt     float64 // degrees
}

var (
	EarthOrbit   = Orbit{1.496e11, 0.0167, 0, 365.256363004, 23.45}
	JupiterOrbit = Orbit{7.785e11, 0.0489, 1.303, 4332.589, 3.13}
	MoonOrbit    = Orbit{3.844e8, 0.0549, 5.145, 27.321661, 1.53}
)

// Cosmology.
const (
	H0          = 70 // Hubble constant, km/s/Mpc
	OmegaM      = 0.3150
	OmegaLambda = 0.6849
	OmegaK      = 0
	OmegaR      = 0.0001

	// H0SI is H0 in s⁻¹.
	H0SI = H0 * Kilo / (Mega * Parsec)

	HubbleRadius = LightSpeed / H0SI // m
	HubbleTime   = 1 / H0SI          // s

	CMBTemperature = 2.72548               // K
	UniverseAge    = 13.8e9 * YearToSecond // s
	UniverseRadius = 46.508e9 * LightYear  // observable, m
)
