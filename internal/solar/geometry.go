// Package solar computes sun-position geometry from closed-form trigonometric
// formulas: declination, elevation, azimuth, equation of time, and sunrise/sunset.
//
// All functions are pure and safe for concurrent use. Angles are in degrees
// unless stated otherwise; the azimuth convention is 0° = South with East
// negative and West positive.
package solar

import (
	"math"
)

// zenithEpsilon is the tolerance (degrees) for treating the sun as exactly
// at zenith, where azimuth is undefined.
const zenithEpsilon = 1e-6

// Declination calculates the solar declination angle in degrees for a day of
// the year (1-365) using Cooper's equation. Values outside 1-365 extrapolate
// the same sinusoid.
func Declination(dayOfYear int) float64 {
	return 23.45 * math.Sin(degToRad(360.0*(284.0+float64(dayOfYear))/365.0))
}

// Elevation calculates the solar elevation (altitude) angle in degrees for an
// observer latitude, solar declination, and hour angle, all in degrees.
func Elevation(latDeg, declDeg, hourAngleDeg float64) float64 {
	lat := degToRad(latDeg)
	decl := degToRad(declDeg)
	ha := degToRad(hourAngleDeg)

	sinEl := math.Sin(lat)*math.Sin(decl) + math.Cos(lat)*math.Cos(decl)*math.Cos(ha)

	// Clamp to [-1, 1]: at boundary geometries (e.g. sun exactly overhead)
	// floating point can overshoot the asin domain.
	sinEl = clampUnit(sinEl)

	return radToDeg(math.Asin(sinEl))
}

// Azimuth calculates the solar azimuth angle in degrees, referenced to South.
// Morning positions (hour angle < 0) are negative (East), afternoon positions
// positive (West). Returns 0 when the sun is at zenith, where azimuth is
// undefined.
func Azimuth(latDeg, declDeg, hourAngleDeg, elevDeg float64) float64 {
	// cos(elevation) -> 0 at zenith; the quotient below blows up there.
	if math.Abs(90-math.Abs(elevDeg)) < zenithEpsilon {
		return 0
	}

	lat := degToRad(latDeg)
	decl := degToRad(declDeg)
	el := degToRad(elevDeg)

	cosAz := (math.Sin(decl)*math.Cos(lat) -
		math.Cos(decl)*math.Sin(lat)*math.Cos(degToRad(hourAngleDeg))) /
		math.Cos(el)
	cosAz = clampUnit(cosAz)

	az := radToDeg(math.Acos(cosAz))

	// acos lands in [0, 180]; mirror into the East half for morning hours.
	if hourAngleDeg < 0 {
		return -az
	}
	return az
}

// EquationOfTime calculates the equation of time in minutes for a day of the
// year: the offset between mean solar time and true solar time caused by
// Earth's orbital eccentricity and axial tilt. Stays within roughly ±17
// minutes for any day of the year.
func EquationOfTime(dayOfYear int) float64 {
	b := degToRad(360.0 * (float64(dayOfYear) - 81.0) / 365.0)
	return 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// clampUnit clamps x to [-1, 1] before an inverse-trig call.
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
