// Package report renders computed solar geometry and panel estimates as JSON
// snapshots and plain-text summaries.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-suntrack/internal/panel"
	"github.com/litescript/ls-suntrack/internal/solar"
)

// PanelConfig bundles a panel with the inputs for its energy estimate.
type PanelConfig struct {
	Panel      panel.Panel
	AreaM2     float64
	Efficiency float64
	DNI        float64
	StepHours  float64
}

// Snapshot is the JSON-serializable result of a site computation.
type Snapshot struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Site        SiteExport   `json:"site"`
	Sun         SunExport    `json:"sun"`
	Panel       *PanelExport `json:"panel,omitempty"`
}

// SiteExport identifies the observer location and time of the computation.
type SiteExport struct {
	LatDeg float64   `json:"latitude"`
	LonDeg float64   `json:"longitude"`
	At     time.Time `json:"at"`
}

// SunExport holds the derived sun geometry for the site.
type SunExport struct {
	DayOfYear       int      `json:"day_of_year"`
	DeclinationDeg  float64  `json:"declination"`
	EquationOfTime  float64  `json:"equation_of_time_min"`
	HourAngleDeg    float64  `json:"hour_angle"`
	ElevationDeg    float64  `json:"elevation"`
	AzimuthDeg      float64  `json:"azimuth"`
	SunriseUTCHours *float64 `json:"sunrise_utc_hours,omitempty"`
	SunsetUTCHours  *float64 `json:"sunset_utc_hours,omitempty"`
	PolarDayOrNight bool     `json:"polar_day_or_night"`
}

// PanelExport holds the panel-side derivations.
type PanelExport struct {
	AzimuthDeg       float64     `json:"azimuth"`
	TiltDeg          float64     `json:"tilt"`
	IncidenceDeg     float64     `json:"incidence"`
	MonthlyEnergyKWh [12]float64 `json:"monthly_energy_kwh"`
	AnnualEnergyKWh  float64     `json:"annual_energy_kwh"`
}

// BuildSnapshot computes the full sun geometry for a site at a clock time,
// plus panel incidence and the twelve monthly energy estimates when a panel
// is configured.
func BuildSnapshot(latDeg, lonDeg float64, at time.Time, pc *PanelConfig) (*Snapshot, error) {
	at = at.UTC()
	pos := solar.PositionAt(at, latDeg, lonDeg)
	rs := solar.SunriseSunset(latDeg, lonDeg, pos.DayOfYear)

	sun := SunExport{
		DayOfYear:       pos.DayOfYear,
		DeclinationDeg:  pos.DeclinationDeg,
		EquationOfTime:  solar.EquationOfTime(pos.DayOfYear),
		HourAngleDeg:    pos.HourAngleDeg,
		ElevationDeg:    pos.ElevationDeg,
		AzimuthDeg:      pos.AzimuthDeg,
		PolarDayOrNight: !rs.Valid,
	}
	if rs.Valid {
		rise, set := rs.SunriseUTC, rs.SunsetUTC
		sun.SunriseUTCHours = &rise
		sun.SunsetUTCHours = &set
	}

	snap := &Snapshot{
		GeneratedAt: time.Now().UTC(),
		Site:        SiteExport{LatDeg: latDeg, LonDeg: lonDeg, At: at},
		Sun:         sun,
	}

	if pc != nil {
		pe := &PanelExport{
			AzimuthDeg:   pc.Panel.AzimuthDeg,
			TiltDeg:      pc.Panel.TiltDeg,
			IncidenceDeg: pc.Panel.IncidenceAngle(pos.AzimuthDeg, pos.ElevationDeg),
		}
		for month := 1; month <= 12; month++ {
			kwh, err := pc.Panel.MonthlyEnergy(month, pc.AreaM2, pc.Efficiency, pc.DNI, pc.StepHours)
			if err != nil {
				return nil, fmt.Errorf("monthly energy for month %d: %w", month, err)
			}
			pe.MonthlyEnergyKWh[month-1] = kwh
			pe.AnnualEnergyKWh += kwh
		}
		snap.Panel = pe
	}

	return snap, nil
}

// WriteJSON writes the snapshot as indented JSON to the given writer.
func (s *Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteSummary writes a human-readable summary table of the snapshot.
func WriteSummary(w io.Writer, s *Snapshot) {
	fmt.Fprintf(w, "Sun @ %.4f°, %.4f° on %s (day %d)\n",
		s.Site.LatDeg, s.Site.LonDeg,
		s.Site.At.Format("2006-01-02 15:04 UTC"), s.Sun.DayOfYear)
	fmt.Fprintln(w, strings.Repeat("─", 56))

	fmt.Fprintf(w, "%-22s %10.2f°\n", "Declination", s.Sun.DeclinationDeg)
	fmt.Fprintf(w, "%-22s %10.2f min\n", "Equation of time", s.Sun.EquationOfTime)
	fmt.Fprintf(w, "%-22s %10.2f°\n", "Hour angle", s.Sun.HourAngleDeg)
	fmt.Fprintf(w, "%-22s %10.2f°\n", "Elevation", s.Sun.ElevationDeg)
	fmt.Fprintf(w, "%-22s %10.2f°\n", "Azimuth", s.Sun.AzimuthDeg)

	if s.Sun.PolarDayOrNight {
		fmt.Fprintf(w, "%-22s %10s\n", "Sunrise/sunset", "none")
	} else {
		fmt.Fprintf(w, "%-22s %10s\n", "Sunrise (UTC)", formatHours(*s.Sun.SunriseUTCHours))
		fmt.Fprintf(w, "%-22s %10s\n", "Sunset (UTC)", formatHours(*s.Sun.SunsetUTCHours))
	}

	if s.Panel == nil {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Panel az %.1f° tilt %.1f°: incidence %.2f°\n",
		s.Panel.AzimuthDeg, s.Panel.TiltDeg, s.Panel.IncidenceDeg)
	fmt.Fprintln(w, strings.Repeat("─", 56))

	for month := time.January; month <= time.December; month++ {
		fmt.Fprintf(w, "%-10s %10.1f kWh\n", month.String(), s.Panel.MonthlyEnergyKWh[month-1])
	}
	fmt.Fprintf(w, "\n%-10s %10.1f kWh\n", "Annual", s.Panel.AnnualEnergyKWh)
}

// formatHours renders fractional hours as HH:MM.
func formatHours(h float64) string {
	hh := int(h)
	mm := int((h - float64(hh)) * 60)
	return fmt.Sprintf("%02d:%02d", hh, mm)
}
