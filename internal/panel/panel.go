// Package panel models a fixed photovoltaic panel: its orientation at a site,
// the angle of incidence of sunlight on its surface, and a simple monthly
// energy estimate from direct normal irradiance.
package panel

import (
	"math"
)

// Panel represents a photovoltaic panel at a geographic location.
//
// AzimuthDeg follows the South-referenced convention: 0° = facing South,
// negative = East, positive = West. TiltDeg is the inclination from
// horizontal: 0° = flat, 90° = vertical. A Panel is an immutable value.
type Panel struct {
	LatDeg     float64
	LonDeg     float64
	AzimuthDeg float64
	TiltDeg    float64
}

// IncidenceAngle calculates the angle in degrees between incoming sunlight
// and the panel's surface normal, given the sun azimuth (South-referenced)
// and elevation in degrees.
//
// 0° means the sun is perpendicular to the panel (maximum coupling); angles
// above 90° mean the sun is behind the panel plane, up to 180° for light
// striking the back face dead-on.
func (p Panel) IncidenceAngle(sunAzDeg, sunElDeg float64) float64 {
	tilt := degToRad(p.TiltDeg)
	panelAz := degToRad(p.AzimuthDeg)
	sunAz := degToRad(sunAzDeg)

	// Zenith angle is the complement of elevation.
	zenith := degToRad(90 - sunElDeg)

	cosTheta := math.Cos(zenith)*math.Cos(tilt) +
		math.Sin(zenith)*math.Sin(tilt)*math.Cos(sunAz-panelAz)
	cosTheta = clampUnit(cosTheta)

	return radToDeg(math.Acos(cosTheta))
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
