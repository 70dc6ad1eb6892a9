// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physconst

import (
	"math"
	"testing"
)

func near(got, want, rel float64) bool {
	return math.Abs(got-want) <= rel*math.Abs(want)
}

func TestDerived(t *testing.T) {
	for _, test := range []struct {
		name      string
		got, want float64
	}{
		{"Coulomb", Coulomb, 8.9875517923e9},
		{"StefanBoltzmann", StefanBoltzmann, 5.670374419e-8},
		{"RadiationConstant", RadiationConstant, 7.565723e-16},
		{"PlanckReduced", PlanckReduced, 1.054571817e-34},
		{"HubbleRadius", HubbleRadius, 1.32151838e26},
		{"HubbleTime", HubbleTime, 4.40811083e17},
		{"HubbleTime in Gyr", HubbleTime * SecondToGyr, 13.9684603},
		{"YearToSecond", YearToSecond, 31557600},
		{"SiderealDay", SiderealDay, 86164.0916},
		{"SunMu", SunMu, 1.32760e20},
		{"WorldPopulationDensity", WorldPopulationDensity, 1.5487e-5},
	} {
		if !near(test.got, test.want, 1e-4) {
			t.Errorf("%s = %g; want %g", test.name, test.got, test.want)
		}
	}
}

func TestInverses(t *testing.T) {
	for _, pair := range [][2]float64{
		{MeterToAngstrom, AngstromToMeter},
		{MeterToFoot, FootToMeter},
		{MileToKM, KMToMile},
		{DayToSecond, SecondToDay},
		{MinuteToSecond, SecondToMinute},
		{GyrToSecond, SecondToGyr},
		{EVToJoule, JouleToEV},
		{AtmToPascal, PascalToAtm},
		{GallonToLiter, LiterToGallon},
		{ArcsecToDegree, DegreeToArcsec},
	} {
		if !near(pair[0]*pair[1], 1, 1e-15) {
			t.Errorf("%g * %g = %g; want 1", pair[0], pair[1], pair[0]*pair[1])
		}
	}
	if CelsiusToKelvin+KelvinToCelsius != 0 {
		t.Errorf("temperature offsets do not cancel")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"LightSpeed", "lightspeed", "LIGHTSPEED"} {
		c, ok := Lookup(name)
		if !ok || c.Value != LightSpeed || c.Unit != "m/s" {
			t.Errorf("Lookup(%q) = %+v, %v", name, c, ok)
		}
	}
	if _, ok := Lookup("Phlogiston"); ok {
		t.Errorf("Lookup of unknown constant succeeded")
	}

	names := Names()
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			t.Errorf("duplicate name %s", name)
		}
		seen[name] = true
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
	if names[0] != "G" {
		t.Errorf("first name %s; want G", names[0])
	}
}

func TestSolarSystem(t *testing.T) {
	if len(SolarSystem) != 9 {
		t.Fatalf("got %d bodies; want 9", len(SolarSystem))
	}
	earth, ok := BodyByName("Earth")
	if !ok || earth.Mass != EarthMass || earth.SemiMajorAxis != 1 {
		t.Errorf("Earth = %+v", earth)
	}
	for i := 1; i < len(SolarSystem); i++ {
		if SolarSystem[i].SemiMajorAxis <= SolarSystem[i-1].SemiMajorAxis {
			t.Errorf("%s is not farther out than %s", SolarSystem[i].Name, SolarSystem[i-1].Name)
		}
	}
	if _, ok := BodyByName("Vulcan"); ok {
		t.Errorf("found Vulcan")
	}
}
