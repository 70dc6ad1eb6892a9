// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physconst

import "strings"

// A Constant is a named constant with its unit, for display.
type Constant struct {
	Name  string
	Value float64
	Unit  string
	Doc   string
}

// constants is the display table, in the order Names reports.
var constants = []Constant{
	{"G", G, "m^3 kg^-1 s^-2", "gravitational constant"},
	{"LightSpeed", LightSpeed, "m/s", "speed of light in vacuum"},
	{"Faraday", Faraday, "C/mol", "Faraday constant"},
	{"Epsilon0", Epsilon0, "F/m", "vacuum permittivity"},
	{"Mu0", Mu0, "N/A^2", "vacuum permeability"},
	{"Coulomb", Coulomb, "N m^2/C^2", "Coulomb constant"},
	{"ElementaryCharge", ElementaryCharge, "C", "elementary charge"},
	{"Avogadro", Avogadro, "mol^-1", "Avogadro constant"},
	{"Boltzmann", Boltzmann, "J/K", "Boltzmann constant"},
	{"GasConstant", GasConstant, "J/(mol K)", "ideal gas constant"},
	{"Planck", Planck, "J s", "Planck constant"},
	{"PlanckReduced", PlanckReduced, "J s", "reduced Planck constant"},
	{"StefanBoltzmann", StefanBoltzmann, "W/(m^2 K^4)", "Stefan-Boltzmann constant"},
	{"RadiationConstant", RadiationConstant, "J/(m^3 K^4)", "radiation constant"},
	{"ProtonMass", ProtonMass, "kg", "proton mass"},
	{"NeutronMass", NeutronMass, "kg", "neutron mass"},
	{"ElectronMass", ElectronMass, "kg", "electron mass"},
	{"AtomicMassUnit", AtomicMassUnit, "kg", "atomic mass unit"},
	{"BohrRadius", BohrRadius, "m", "Bohr radius"},

	{"USAPopulation", USAPopulation, "people", "population of the USA"},
	{"WorldPopulation", WorldPopulation, "people", "population of the world"},
	{"USAArea", USAArea, "m^2", "area of the USA"},
	{"WorldArea", WorldArea, "m^2", "surface area of the Earth"},
	{"USAPopulationDensity", USAPopulationDensity, "people/m^2", "population density of the USA"},
	{"WorldPopulationDensity", WorldPopulationDensity, "people/m^2", "population density of the world"},

	{"AU", AU, "m", "astronomical unit"},
	{"Parsec", Parsec, "m", "parsec"},
	{"LightYear", LightYear, "m", "light year"},
	{"SolarDay", SolarDay, "s", "solar day"},
	{"SiderealDay", SiderealDay, "s", "sidereal day"},
	{"SunMass", SunMass, "kg", "mass of the Sun"},
	{"SunRadius", SunRadius, "m", "radius of the Sun"},
	{"SunLuminosity", SunLuminosity, "W", "luminosity of the Sun"},
	{"SunDensity", SunDensity, "kg/m^3", "mean density of the Sun"},
	{"SunTemperature", SunTemperature, "K", "effective temperature of the Sun"},
	{"SunCoreTemp", SunCoreTemp, "K", "core temperature of the Sun"},
	{"SunField", SunField, "T", "surface magnetic field of the Sun"},
	{"SolarConstant", SolarConstant, "W/m^2", "solar constant"},
	{"SunMu", SunMu, "m^3/s^2", "solar gravitational parameter"},
	{"SunAge", SunAge, "s", "age of the Sun"},
	{"EarthMass", EarthMass, "kg", "mass of the Earth"},
	{"EarthRadius", EarthRadius, "m", "radius of the Earth"},
	{"EarthField", EarthField, "T", "magnetic field of the Earth"},
	{"EarthDensity", EarthDensity, "kg/m^3", "mean density of the Earth"},
	{"JupiterMass", JupiterMass, "kg", "mass of Jupiter"},
	{"JupiterRadius", JupiterRadius, "m", "radius of Jupiter"},
	{"JupiterField", JupiterField, "T", "magnetic field of Jupiter"},
	{"JupiterDensity", JupiterDensity, "kg/m^3", "mean density of Jupiter"},
	{"MoonMass", MoonMass, "kg", "mass of the Moon"},
	{"MoonRadius", MoonRadius, "m", "radius of the Moon"},
	{"MoonDensity", MoonDensity, "kg/m^3", "mean density of the Moon"},
	{"H0", H0, "km/s/Mpc", "Hubble constant"},
	{"H0SI", H0SI, "s^-1", "Hubble constant"},
	{"HubbleRadius", HubbleRadius, "m", "Hubble radius"},
	{"HubbleTime", HubbleTime, "s", "Hubble time"},
	{"OmegaM", OmegaM, "", "matter density parameter"},
	{"OmegaLambda", OmegaLambda, "", "dark energy density parameter"},
	{"OmegaK", OmegaK, "", "curvature density parameter"},
	{"OmegaR", OmegaR, "", "radiation density parameter"},
	{"CMBTemperature", CMBTemperature, "K", "CMB temperature"},
	{"UniverseAge", UniverseAge, "s", "age of the universe"},
	{"UniverseRadius", UniverseRadius, "m", "radius of the observable universe"},
}

var byName = func() map[string]int {
	m := make(map[string]int, len(constants))
	for i, c := range constants {
		m[strings.ToLower(c.Name)] = i
	}
	return m
}()

// Lookup returns the constant called name, ignoring case.
func Lookup(name string) (Constant, bool) {
	i, ok := byName[strings.ToLower(name)]
	if !ok {
		return Constant{}, false
	}
	return constants[i], true
}

// Names returns the names of all constants known to Lookup, grouped
// by subject.
func Names() []string {
	names := make([]string, len(constants))
	for i, c := range constants {
		names[i] = c.Name
	}
	return names
}
