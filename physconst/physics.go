// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physconst provides physical, astronomical, and demographic
// constants and unit conversion factors, all in SI units unless
// noted.
//
// Measured values are CODATA 2018 where applicable. Derived values
// are constant expressions, evaluated exactly at compile time.
package physconst

import "math"

// Gravity.
const (
	G = 6.67430e-11 // gravitational constant, m³ kg⁻¹ s⁻²
)

// Electromagnetism.
const (
	LightSpeed       = 299792458           // speed of light in vacuum, m/s
	Faraday          = 96485.3321233100184 // C/mol
	Epsilon0         = 8.854187817e-12     // vacuum permittivity, F/m
	Mu0              = 1.2566370614e-6     // vacuum permeability, N/A²
	ElementaryCharge = 1.602176634e-19     // C

	Coulomb = 1 / (4 * math.Pi * Epsilon0) // N m²/C²
)

// Thermodynamics.
const (
	Avogadro    = 6.02214076e23    // mol⁻¹
	Boltzmann   = 1.380649e-23     // J/K
	GasConstant = 8.31446261815324 // J/(mol K)
)

// Quantum mechanics.
const (
	Planck        = 6.62607015e-34 // J s
	PlanckReduced = Planck / (2 * math.Pi)

	// StefanBoltzmann is 2π⁵k⁴/(15c²h³), in W/(m² K⁴).
	StefanBoltzmann = 2 * math.Pi * math.Pi * math.Pi * math.Pi * math.Pi *
		Boltzmann * Boltzmann * Boltzmann * Boltzmann /
		(15 * LightSpeed * LightSpeed * Planck * Planck * Planck)

	RadiationConstant = 4 * StefanBoltzmann / LightSpeed // J/(m³ K⁴)

	ProtonMass     = 1.67262192369e-27 // kg
	NeutronMass    = 1.67492749804e-27 // kg
	ElectronMass   = 9.1093837015e-31  // kg
	AtomicMassUnit = 1.66053906660e-27 // kg
	BohrRadius     = 5.29177210903e-11 // m
)
