package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-suntrack/internal/panel"
	"github.com/litescript/ls-suntrack/internal/report"
)

func testModel() Model {
	at := time.Date(2023, time.June, 21, 12, 0, 0, 0, time.UTC)
	pc := &report.PanelConfig{
		Panel:      panel.Panel{LatDeg: 51.5074, LonDeg: -0.1278, AzimuthDeg: 0, TiltDeg: 35},
		AreaM2:     10,
		Efficiency: 0.2,
		DNI:        800,
		StepHours:  1,
	}
	return New(51.5074, -0.1278, at, pc)
}

func TestNewModel(t *testing.T) {
	m := testModel()

	if m.day != 172 {
		t.Errorf("day = %d, want 172", m.day)
	}
	if m.hourUTC != 12 {
		t.Errorf("hourUTC = %v, want 12", m.hourUTC)
	}
	if m.energyErr != nil {
		t.Fatalf("energy precompute error: %v", m.energyErr)
	}
	for month, kwh := range m.monthlyKWh {
		if kwh < 0 {
			t.Errorf("month %d energy = %v, want >= 0", month+1, kwh)
		}
	}
}

func TestUpdateScrubsDay(t *testing.T) {
	m := testModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	if m.day != 173 {
		t.Errorf("day after right = %d, want 173", m.day)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	if m.day != 172 {
		t.Errorf("day after left = %d, want 172", m.day)
	}
}

func TestUpdateWrapsDay(t *testing.T) {
	m := testModel()
	m.day = 365

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	if m.day != 1 {
		t.Errorf("day after wrap = %d, want 1", m.day)
	}
}

func TestUpdateScrubsTime(t *testing.T) {
	m := testModel()
	m.hourUTC = 23.75

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.hourUTC != 0 {
		t.Errorf("hourUTC after wrap = %v, want 0", m.hourUTC)
	}
}

func TestViewContainsReadouts(t *testing.T) {
	m := testModel()
	out := m.View()

	for _, want := range []string{"Declination", "Elevation", "Azimuth", "Sunrise", "Panel", "kWh"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewPolarSite(t *testing.T) {
	at := time.Date(2023, time.December, 21, 12, 0, 0, 0, time.UTC)
	m := New(90, 0, at, nil)

	if !strings.Contains(m.View(), "none") {
		t.Error("polar view missing rise/set sentinel")
	}
}

func TestRenderEnergyBar(t *testing.T) {
	tests := []struct {
		name       string
		frac       float64
		width      int
		wantFilled int
	}{
		{"empty", 0.0, 10, 0},
		{"full", 1.0, 10, 10},
		{"half", 0.5, 10, 5},
		{"over full", 1.5, 10, 10}, // capped at width
		{"negative", -0.5, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderEnergyBar(tt.frac, tt.width)

			if !strings.HasPrefix(bar, "[") || !strings.HasSuffix(bar, "]") {
				t.Errorf("bar should have brackets, got %q", bar)
			}
			if filled := strings.Count(bar, "█"); filled != tt.wantFilled {
				t.Errorf("filled count = %d, want %d", filled, tt.wantFilled)
			}
		})
	}
}

func TestRenderElevationSparklineWidth(t *testing.T) {
	m := testModel()

	spark := m.renderElevationSparkline()
	// Strip ANSI sequences by counting block runes directly.
	var blocks int
	for _, r := range spark {
		for _, b := range sparklineBlocks {
			if r == b {
				blocks++
				break
			}
		}
	}
	if blocks != SparklineWidth {
		t.Errorf("sparkline has %d blocks, want %d", blocks, SparklineWidth)
	}
}
