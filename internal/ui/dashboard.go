// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-suntrack/internal/report"
	"github.com/litescript/ls-suntrack/internal/solar"
	"github.com/litescript/ls-suntrack/internal/version"
)

// Styles for the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	nightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// SparklineWidth is the fixed width of the daily elevation sparkline.
const SparklineWidth = 48

// EnergyBarWidth is the width of the monthly energy bars.
const EnergyBarWidth = 28

// sparklineBlocks are the Unicode block characters for the sparkline
// (0 = lowest, 7 = highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// refYear is the fixed non-leap reference year used to map a scrubbed
// day-of-year back to a calendar date.
const refYear = 2023

// Model is the root Bubble Tea model: a sun-position dashboard for one site
// that scrubs through day-of-year and time-of-day with the keyboard.
type Model struct {
	width  int
	height int

	latDeg float64
	lonDeg float64

	day     int     // day of year, 1-365
	hourUTC float64 // fractional hours, [0, 24)

	// Panel section, optional. Monthly energies depend only on the panel,
	// not on the scrub position, so they are computed once.
	panelCfg   *report.PanelConfig
	monthlyKWh [12]float64
	energyErr  error
}

// New creates the dashboard model positioned at the given time.
func New(latDeg, lonDeg float64, at time.Time, pc *report.PanelConfig) Model {
	at = at.UTC()

	m := Model{
		latDeg:   latDeg,
		lonDeg:   lonDeg,
		day:      at.YearDay(),
		hourUTC:  float64(at.Hour()) + float64(at.Minute())/60.0,
		panelCfg: pc,
	}
	if m.day > 365 {
		m.day = 365
	}

	if pc != nil {
		for month := 1; month <= 12; month++ {
			kwh, err := pc.Panel.MonthlyEnergy(month, pc.AreaM2, pc.Efficiency, pc.DNI, pc.StepHours)
			if err != nil {
				m.energyErr = err
				break
			}
			m.monthlyKWh[month-1] = kwh
		}
	}

	return m
}

// Init implements the Bubble Tea model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.day = wrapDay(m.day - 1)
		case "right", "l":
			m.day = wrapDay(m.day + 1)
		case "shift+left", "H":
			m.day = wrapDay(m.day - 7)
		case "shift+right", "L":
			m.day = wrapDay(m.day + 7)
		case "up", "k":
			m.hourUTC = wrapHours(m.hourUTC + 0.25)
		case "down", "j":
			m.hourUTC = wrapHours(m.hourUTC - 0.25)
		case "n":
			now := time.Now().UTC()
			m.day = wrapDay(now.YearDay())
			m.hourUTC = float64(now.Hour()) + float64(now.Minute())/60.0
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ls-suntrack " + version.Version))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %.4f°, %.4f°", m.latDeg, m.lonDeg)))
	b.WriteString("\n\n")

	decl := solar.Declination(m.day)
	eot := solar.EquationOfTime(m.day)
	ha := m.hourAngle(m.hourUTC)
	el := solar.Elevation(m.latDeg, decl, ha)
	az := solar.Azimuth(m.latDeg, decl, ha, el)
	rs := solar.SunriseSunset(m.latDeg, m.lonDeg, m.day)

	date := time.Date(refYear, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, m.day-1)
	b.WriteString(labelStyle.Render(fmt.Sprintf("Day %3d", m.day)))
	b.WriteString(valueStyle.Render(fmt.Sprintf(" (%s)  ", date.Format("Jan 02"))))
	b.WriteString(labelStyle.Render("Time "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%05.2fh UTC", m.hourUTC)))
	b.WriteString("\n\n")

	b.WriteString(m.renderReadout("Declination", fmt.Sprintf("%7.2f°", decl)))
	b.WriteString(m.renderReadout("Eq. of time", fmt.Sprintf("%7.2f min", eot)))
	b.WriteString(m.renderReadout("Hour angle", fmt.Sprintf("%7.2f°", ha)))
	b.WriteString(m.renderReadout("Elevation", fmt.Sprintf("%7.2f°", el)))
	b.WriteString(m.renderReadout("Azimuth", fmt.Sprintf("%7.2f°", az)))

	if rs.Valid {
		b.WriteString(m.renderReadout("Sunrise", formatHours(rs.SunriseUTC)+" UTC"))
		b.WriteString(m.renderReadout("Sunset", formatHours(rs.SunsetUTC)+" UTC"))
	} else {
		b.WriteString(m.renderReadout("Sunrise/set", "none (polar day or night)"))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Elevation over the day"))
	b.WriteString("\n")
	b.WriteString(m.renderElevationSparkline())
	b.WriteString("\n")

	if m.panelCfg != nil {
		b.WriteString("\n")
		b.WriteString(m.renderPanelSection(az, el))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ day  shift+←/→ week  ↑/↓ time  n now  q quit"))
	b.WriteString("\n")

	return b.String()
}

// hourAngle converts a UTC clock hour to the solar hour angle in degrees,
// applying the longitude offset and the equation of time.
func (m Model) hourAngle(hourUTC float64) float64 {
	solarHours := hourUTC + m.lonDeg/15.0 + solar.EquationOfTime(m.day)/60.0
	ha := 15.0 * (solarHours - 12.0)
	for ha < -180 {
		ha += 360
	}
	for ha >= 180 {
		ha -= 360
	}
	return ha
}

func (m Model) renderReadout(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-14s", label)) + valueStyle.Render(value) + "\n"
}

// renderElevationSparkline renders the day's elevation curve. Hours with the
// sun below the horizon render as dimmed baseline blocks.
func (m Model) renderElevationSparkline() string {
	decl := solar.Declination(m.day)

	var sb strings.Builder
	for i := 0; i < SparklineWidth; i++ {
		hour := 24.0 * float64(i) / float64(SparklineWidth)
		el := solar.Elevation(m.latDeg, decl, m.hourAngle(hour))

		if el < 0 {
			sb.WriteString(nightStyle.Render(string(sparklineBlocks[0])))
			continue
		}
		if el > 90 {
			el = 90
		}

		blockIdx := int(el / 90.0 * 7.0)
		if blockIdx > 7 {
			blockIdx = 7
		}

		// Warmer color the higher the sun sits.
		color := lipgloss.Color(fmt.Sprintf("%d", 226-blockIdx*4))
		sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(sparklineBlocks[blockIdx])))
	}

	return sb.String()
}

// renderPanelSection renders incidence at the scrub position plus the
// monthly energy bars.
func (m Model) renderPanelSection(sunAz, sunEl float64) string {
	pc := m.panelCfg

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("Panel az %.1f° tilt %.1f°  ",
		pc.Panel.AzimuthDeg, pc.Panel.TiltDeg)))
	b.WriteString(valueStyle.Render(fmt.Sprintf("incidence %.2f°", pc.Panel.IncidenceAngle(sunAz, sunEl))))
	b.WriteString("\n")

	if m.energyErr != nil {
		b.WriteString(dimStyle.Render("Energy estimate unavailable: " + m.energyErr.Error()))
		b.WriteString("\n")
		return b.String()
	}

	var maxKWh float64
	for _, kwh := range m.monthlyKWh {
		if kwh > maxKWh {
			maxKWh = kwh
		}
	}

	for month := time.January; month <= time.December; month++ {
		kwh := m.monthlyKWh[month-1]
		frac := 0.0
		if maxKWh > 0 {
			frac = kwh / maxKWh
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("%-4s", month.String()[:3])))
		b.WriteString(renderEnergyBar(frac, EnergyBarWidth))
		b.WriteString(valueStyle.Render(fmt.Sprintf(" %7.1f kWh", kwh)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderEnergyBar renders a bracketed bar filled proportionally to frac.
func renderEnergyBar(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}

	return "[" + strings.Repeat("█", filled) + strings.Repeat(" ", width-filled) + "]"
}

// wrapDay wraps a day-of-year into 1-365.
func wrapDay(day int) int {
	for day < 1 {
		day += 365
	}
	for day > 365 {
		day -= 365
	}
	return day
}

// wrapHours wraps fractional hours into [0, 24).
func wrapHours(h float64) float64 {
	for h < 0 {
		h += 24
	}
	for h >= 24 {
		h -= 24
	}
	return h
}

// formatHours renders fractional hours as HH:MM.
func formatHours(h float64) string {
	hh := int(h)
	mm := int((h - float64(hh)) * 60)
	return fmt.Sprintf("%02d:%02d", hh, mm)
}
