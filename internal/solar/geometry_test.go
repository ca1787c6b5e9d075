package solar

import (
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	meeussolar "github.com/soniakeys/meeus/v3/solar"
)

func TestDeclination(t *testing.T) {
	tests := []struct {
		name      string
		dayOfYear int
		want      float64
		tol       float64
	}{
		{
			name:      "Spring equinox - near zero",
			dayOfYear: 80,
			want:      0,
			tol:       2.0,
		},
		{
			name:      "Summer solstice - near maximum",
			dayOfYear: 172,
			want:      23.45,
			tol:       0.5,
		},
		{
			name:      "Winter solstice - near minimum",
			dayOfYear: 355,
			want:      -23.45,
			tol:       0.5,
		},
		{
			name:      "Autumn equinox - near zero",
			dayOfYear: 266,
			want:      0,
			tol:       2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Declination(tt.dayOfYear)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Declination(%d) = %.3f°, want %.3f° (±%.1f°)",
					tt.dayOfYear, got, tt.want, tt.tol)
			}
		})
	}
}

func TestDeclinationBounded(t *testing.T) {
	// Cooper's equation can never exceed the obliquity amplitude.
	for day := 1; day <= 365; day++ {
		decl := Declination(day)
		if math.Abs(decl) > 23.45+1e-9 {
			t.Errorf("Declination(%d) = %.4f°, outside ±23.45°", day, decl)
		}
	}
}

func TestDeclinationAgainstEphemeris(t *testing.T) {
	// Cross-check Cooper's approximation against the VSOP-based apparent
	// declination from the meeus library. Cooper is only an approximation,
	// so the tolerance is loose.
	const tol = 2.0

	for month := time.January; month <= time.December; month++ {
		date := time.Date(2023, month, 15, 12, 0, 0, 0, time.UTC)
		_, dec := meeussolar.ApparentEquatorial(julian.TimeToJD(date))

		got := Declination(date.YearDay())
		if math.Abs(got-dec.Deg()) > tol {
			t.Errorf("Declination(%d) = %.3f°, ephemeris says %.3f° (±%.1f°)",
				date.YearDay(), got, dec.Deg(), tol)
		}
	}
}

func TestElevation(t *testing.T) {
	tests := []struct {
		name               string
		lat, decl, hourAng float64
		want               float64
		tol                float64
	}{
		{
			name: "Equator equinox noon - sun overhead",
			lat:  0, decl: 0, hourAng: 0,
			want: 90,
			tol:  0.1,
		},
		{
			name: "Equator equinox sunrise - sun on horizon",
			lat:  0, decl: 0, hourAng: -90,
			want: 0,
			tol:  0.1,
		},
		{
			name: "Equator equinox sunset - sun on horizon",
			lat:  0, decl: 0, hourAng: 90,
			want: 0,
			tol:  0.1,
		},
		{
			name: "Mid-latitude solstice noon",
			lat:  40, decl: 23.45, hourAng: 0,
			want: 73.45, // 90 - lat + decl
			tol:  0.1,
		},
		{
			name: "Equator equinox midnight - sun at nadir",
			lat:  0, decl: 0, hourAng: 180,
			want: -90,
			tol:  0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Elevation(tt.lat, tt.decl, tt.hourAng)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Elevation(%v, %v, %v) = %.3f°, want %.3f° (±%.1f°)",
					tt.lat, tt.decl, tt.hourAng, got, tt.want, tt.tol)
			}
		})
	}
}

func TestElevationClampsOvershoot(t *testing.T) {
	// Degenerate geometry that can push the asin argument past 1.
	got := Elevation(90, 90, 0)
	if math.IsNaN(got) {
		t.Fatal("Elevation returned NaN for boundary geometry")
	}
	if math.Abs(got-90) > 0.1 {
		t.Errorf("Elevation(90, 90, 0) = %.3f°, want 90°", got)
	}
}

func TestAzimuth(t *testing.T) {
	tests := []struct {
		name                     string
		lat, decl, hourAng, elev float64
		want                     float64
		tol                      float64
	}{
		{
			name: "Equator equinox morning - due East",
			lat:  0, decl: 0, hourAng: -90, elev: 0,
			want: -90,
			tol:  0.1,
		},
		{
			name: "Equator equinox afternoon - due West",
			lat:  0, decl: 0, hourAng: 90, elev: 0,
			want: 90,
			tol:  0.1,
		},
		{
			name: "Equator equinox mid-morning - still due East",
			lat:  0, decl: 0, hourAng: -45, elev: 45,
			want: -90,
			tol:  0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Azimuth(tt.lat, tt.decl, tt.hourAng, tt.elev)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Azimuth(%v, %v, %v, %v) = %.3f°, want %.3f° (±%.1f°)",
					tt.lat, tt.decl, tt.hourAng, tt.elev, got, tt.want, tt.tol)
			}
		})
	}
}

func TestAzimuthAtZenith(t *testing.T) {
	// Azimuth is undefined with the sun directly overhead; the guard must
	// return exactly zero rather than divide by cos(90°).
	if got := Azimuth(0, 0, 0, 90); got != 0 {
		t.Errorf("Azimuth at zenith = %v, want exactly 0", got)
	}
	if got := Azimuth(0, 0, 0, 90-1e-8); got != 0 {
		t.Errorf("Azimuth just below zenith tolerance = %v, want exactly 0", got)
	}
}

func TestAzimuthMorningNegative(t *testing.T) {
	// Morning hours must land in the East half, afternoon in the West half.
	decl := Declination(172)
	for _, ha := range []float64{-75, -45, -15} {
		el := Elevation(40, decl, ha)
		if az := Azimuth(40, decl, ha, el); az > 0 {
			t.Errorf("Azimuth(40, %.2f, %v, %.2f) = %.2f°, want <= 0 for morning",
				decl, ha, el, az)
		}
	}
	for _, ha := range []float64{15, 45, 75} {
		el := Elevation(40, decl, ha)
		if az := Azimuth(40, decl, ha, el); az < 0 {
			t.Errorf("Azimuth(40, %.2f, %v, %.2f) = %.2f°, want >= 0 for afternoon",
				decl, ha, el, az)
		}
	}
}

func TestEquationOfTimeRange(t *testing.T) {
	// EoT stays within ±17 minutes for every day of the year.
	for day := 1; day <= 365; day++ {
		eot := EquationOfTime(day)
		if eot < -17 || eot > 17 {
			t.Errorf("EquationOfTime(%d) = %.3f min, outside [-17, 17]", day, eot)
		}
	}
}

func TestEquationOfTimeExtremes(t *testing.T) {
	// Early November has the largest positive offset, mid-February the
	// largest negative one.
	if eot := EquationOfTime(307); eot < 14 {
		t.Errorf("EquationOfTime(307) = %.2f min, want > 14 (November maximum)", eot)
	}
	if eot := EquationOfTime(42); eot > -13 {
		t.Errorf("EquationOfTime(42) = %.2f min, want < -13 (February minimum)", eot)
	}
}
