// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physconst

// A Body is a planet or dwarf planet of the solar system.
type Body struct {
	Name          string
	Mass          float64 // kg
	SemiMajorAxis float64 // AU
	Eccentricity  float64
	Period        float64 // years
	Radius        float64 // m
	MeanAnomaly   float64 // degrees, at J2000
}

// SolarSystem lists the planets and Pluto in order from the Sun.
var SolarSystem = []Body{
	{"Mercury", 0.33e24, 0.387, 0.205, 0.24, 4879e3 / 2, 174.79},
	{"Venus", 4.87e24, 0.723, 0.006, 0.62, 12104e3 / 2, 50.44},
	{"Earth", EarthMass, 1.0, 0.0167, 1, 12742e3 / 2, 0},
	{"Mars", 0.642e24, 1.524, 0.093, 1.88, 6779e3 / 2, 19.412},
	{"Jupiter", JupiterMass, 5.203, 0.048, 11.86, 139822e3 / 2, 19.65},
	{"Saturn", 568e24, 9.537, 0.054, 29.46, 116464e3 / 2, -42.48},
	{"Uranus", 86.8e24, 19.191, 0.047, 84.01, 50724e3 / 2, 142.26},
	{"Neptune", 102e24, 30.069, 0.0086, 164.8, 49244e3 / 2, 259.90},
	{"Pluto", 0.013e24, 39.482, 0.248, 248.6, 2376e3 / 2, 14.53},
}

// BodyByName returns the body of the solar system called name.
func BodyByName(name string) (Body, bool) {
	for _, b := range SolarSystem {
		if b.Name == name {
			return b, true
		}
	}
	return Body{}, false
}
