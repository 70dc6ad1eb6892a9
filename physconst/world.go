// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physconst

// Population and land area.
const (
	USAPopulation   = 333.3e6 // people
	WorldPopulation = 7.9e9   // people

	USAArea   = 9.8e6 * Kilo * Kilo   // m²
	WorldArea = 510.1e6 * Kilo * Kilo // m²

	USAPopulationDensity   = USAPopulation / USAArea     // people/m²
	WorldPopulationDensity = WorldPopulation / WorldArea // people/m²
)
