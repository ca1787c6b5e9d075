package solar

import (
	"math"
)

// poleEpsilon is the tolerance (degrees) for treating a latitude as polar.
const poleEpsilon = 1e-6

// RiseSet holds sunrise and sunset times in UTC hours for one day.
//
// Valid is false when the sun never crosses the horizon that day: polar day
// and polar night both produce the same invalid result, and the two cases are
// deliberately not distinguished.
type RiseSet struct {
	SunriseUTC float64 // hours in [0, 24)
	SunsetUTC  float64 // hours in [0, 24)
	Valid      bool
}

// SunriseSunset calculates sunrise and sunset times in UTC hours for an
// observer latitude/longitude (degrees, East longitude positive) and day of
// the year (1-365).
func SunriseSunset(latDeg, lonDeg float64, dayOfYear int) RiseSet {
	declDeg := Declination(dayOfYear)

	// At the poles tan(lat) is unbounded; every day is either polar day or
	// polar night, and neither has a rise/set event.
	if math.Abs(math.Abs(latDeg)-90) < poleEpsilon {
		return RiseSet{}
	}

	// cos(omega) = -tan(lat) * tan(decl)
	cosHA := -math.Tan(degToRad(latDeg)) * math.Tan(degToRad(declDeg))

	if cosHA > 1 {
		return RiseSet{} // sun never rises
	}
	if cosHA < -1 {
		return RiseSet{} // sun never sets
	}

	haDeg := radToDeg(math.Acos(cosHA))

	// Solar noon in UTC, corrected for longitude and the equation of time.
	noonUTC := 12.0 - lonDeg/15.0 - EquationOfTime(dayOfYear)/60.0

	rise := math.Mod(noonUTC-haDeg/15.0, 24)
	if rise < 0 {
		rise += 24
	}
	set := math.Mod(noonUTC+haDeg/15.0, 24)
	if set < 0 {
		set += 24
	}

	return RiseSet{SunriseUTC: rise, SunsetUTC: set, Valid: true}
}
