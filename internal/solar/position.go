package solar

import (
	"math"
	"time"
)

// Position is the instantaneous sun position for an observer, derived from a
// clock time. All angles in degrees; azimuth is South-referenced (East
// negative, West positive).
type Position struct {
	DayOfYear      int
	DeclinationDeg float64
	HourAngleDeg   float64
	ElevationDeg   float64
	AzimuthDeg     float64
}

// PositionAt calculates the sun position for an observer latitude/longitude
// (degrees, East positive) at a clock time. The time is interpreted in UTC;
// true solar time applies the longitude offset and the equation of time, so
// this path is consistent with SunriseSunset.
func PositionAt(t time.Time, latDeg, lonDeg float64) Position {
	t = t.UTC()
	n := t.YearDay()

	clockHours := float64(t.Hour()) +
		float64(t.Minute())/60.0 +
		float64(t.Second())/3600.0

	solarHours := clockHours + lonDeg/15.0 + EquationOfTime(n)/60.0

	// 15 degrees per hour from solar noon, wrapped into [-180, 180).
	ha := 15.0 * (solarHours - 12.0)
	ha = math.Mod(ha+540, 360) - 180

	decl := Declination(n)
	el := Elevation(latDeg, decl, ha)
	az := Azimuth(latDeg, decl, ha, el)

	return Position{
		DayOfYear:      n,
		DeclinationDeg: decl,
		HourAngleDeg:   ha,
		ElevationDeg:   el,
		AzimuthDeg:     az,
	}
}
