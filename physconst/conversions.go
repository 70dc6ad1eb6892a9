// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physconst

// Metric prefixes.
const (
	Exa   = 1e18
	Peta  = 1e15
	Tera  = 1e12
	Giga  = 1e9
	Mega  = 1e6
	Kilo  = 1e3
	Centi = 1e-2
	Milli = 1e-3
	Micro = 1e-6
	Nano  = 1e-9
	Pico  = 1e-12
	Femto = 1e-15
	Atto  = 1e-18
)

// Conversion factors. Multiply a quantity in the first unit by XToY
// to get it in the second.
const (
	MeterToAngstrom = 1e10
	AngstromToMeter = 1 / MeterToAngstrom
	MeterToFoot     = 3.28084
	FootToMeter     = 1 / MeterToFoot
	InchToMeter     = 0.0254
	MeterToInch     = 1 / InchToMeter
	InchToCM        = 2.54
	CMToInch        = 1 / InchToCM
	MileToKM        = 1.60934
	KMToMile        = 1 / MileToKM
	MileToMeter     = 1609.34
	MeterToMile     = 1 / MileToMeter

	YearToSecond   = 365.25 * DayToSecond // Julian year
	SecondToYear   = 1 / YearToSecond
	DayToSecond    = 24 * 3600
	SecondToDay    = 1.0 / DayToSecond
	MinuteToSecond = 60
	SecondToMinute = 1.0 / MinuteToSecond
	GyrToSecond    = 1e9 * YearToSecond
	SecondToGyr    = 1 / GyrToSecond

	EVToJoule  = ElementaryCharge
	JouleToEV  = 1 / EVToJoule
	ErgToJoule = 1e-7
	JouleToErg = 1 / ErgToJoule

	PoundToKG = 0.453592
	KGToPound = 1 / PoundToKG

	AtmToPascal = 101325
	PascalToAtm = 1.0 / AtmToPascal

	LiterToCubicMeter = 0.001
	CubicMeterToLiter = 1 / LiterToCubicMeter
	GallonToLiter     = 3.78541
	LiterToGallon     = 1 / GallonToLiter

	ArcsecToRadian = 4.84814e-6
	RadianToArcsec = 1 / ArcsecToRadian
	ArcminToRadian = 2.9088e-4
	RadianToArcmin = 1 / ArcminToRadian
	ArcsecToDegree = 2.77778e-4
	DegreeToArcsec = 1 / ArcsecToDegree
)

// Temperature offsets. Add KelvinToCelsius to a temperature in kelvin
// to get degrees Celsius.
const (
	KelvinToCelsius = -273.15
	CelsiusToKelvin = -KelvinToCelsius
)
