package panel

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidMonth is returned by MonthlyEnergy for a month outside 1-12.
var ErrInvalidMonth = errors.New("month must be in range 1-12")

// daysInMonth holds fixed non-leap-year day counts.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// cosElEpsilon is the threshold below which the sun is treated as exactly at
// zenith, where its azimuth is arbitrary.
const cosElEpsilon = 1e-8

// MonthlyEnergy estimates the energy in kWh the panel produces over a
// calendar month (1-12) from direct normal irradiance.
//
// areaM2 is the panel surface in m², efficiency the conversion fraction in
// [0,1], dni the direct normal irradiance in W/m², and stepHours the
// integration timestep. For every day of the month and every timestep of the
// day the sun position is rederived from local solar time (longitude offset
// only, no equation-of-time correction) and projected onto the panel normal;
// timesteps with the sun below the horizon or behind the panel plane
// contribute nothing. The result is never negative.
func (p Panel) MonthlyEnergy(month int, areaM2, efficiency, dni, stepHours float64) (float64, error) {
	if month < 1 || month > 12 {
		return 0, ErrInvalidMonth
	}

	lat := degToRad(p.LatDeg)

	// Panel normal in the East-North-Up frame. The panel azimuth is
	// South-referenced, so +180° converts it to azimuth-from-north.
	tilt := degToRad(p.TiltDeg)
	panelAzN := degToRad(p.AzimuthDeg + 180)
	normal := vec3{
		X: math.Sin(tilt) * math.Sin(panelAzN),
		Y: math.Sin(tilt) * math.Cos(panelAzN),
		Z: math.Cos(tilt),
	}

	// Day-of-year offset for the first day of the month.
	startDay := 0
	for m := 0; m < month-1; m++ {
		startDay += daysInMonth[m]
	}

	dayWh := make([]float64, 0, daysInMonth[month-1])

	for day := 1; day <= daysInMonth[month-1]; day++ {
		n := startDay + day

		decl := degToRad(23.45) * math.Sin(2*math.Pi*(284.0+float64(n))/365.0)

		var wh float64
		for clock := 0.0; clock < 24.0; clock += stepHours {
			// Approximate local solar time from the longitude offset alone.
			solarHours := clock + p.LonDeg/15.0
			ha := degToRad(15.0 * (solarHours - 12.0))

			sinEl := math.Sin(lat)*math.Sin(decl) +
				math.Cos(lat)*math.Cos(decl)*math.Cos(ha)
			if sinEl <= 0 {
				continue // sun below horizon
			}
			cosEl := math.Sqrt(math.Max(0, 1-sinEl*sinEl))

			// Sun azimuth-from-north components; arbitrary at zenith.
			sinAz, cosAz := 0.0, 1.0
			if cosEl > cosElEpsilon {
				sinAz = math.Cos(decl) * math.Sin(ha) / cosEl
				cosAz = (math.Sin(decl)*math.Cos(lat) -
					math.Cos(decl)*math.Sin(lat)*math.Cos(ha)) / cosEl
			}
			azN := math.Atan2(sinAz, cosAz)
			if azN < 0 {
				azN += 2 * math.Pi
			}

			sun := vec3{
				X: cosEl * math.Sin(azN),
				Y: cosEl * math.Cos(azN),
				Z: sinEl,
			}

			dot := sun.Dot(normal)
			if dot <= 0 {
				continue // sun behind the panel plane
			}

			wh += dni * dot * areaM2 * efficiency * stepHours
		}
		dayWh = append(dayWh, wh)
	}

	return floats.Sum(dayWh) / 1000.0, nil
}

// vec3 is a 3D vector in the local East-North-Up frame.
type vec3 struct {
	X, Y, Z float64
}

// Dot returns the dot product of two vectors.
func (v vec3) Dot(u vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}
