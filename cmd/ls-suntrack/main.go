// Command ls-suntrack is a terminal UI and headless calculator for solar
// geometry and photovoltaic panel estimates at a site.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-suntrack/internal/logging"
	"github.com/litescript/ls-suntrack/internal/panel"
	"github.com/litescript/ls-suntrack/internal/report"
	"github.com/litescript/ls-suntrack/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	watchInterval time.Duration
	snapshotPath  string
)

func main() {
	lat := flag.Float64("lat", 40.7128, "Site latitude in degrees (north positive)")
	lon := flag.Float64("lon", -74.0060, "Site longitude in degrees (east positive)")
	atStr := flag.String("at", "", "Time of interest, RFC 3339 (default: now)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")

	panelMode := flag.Bool("panel", false, "Include panel incidence and monthly energy estimates")
	panelAz := flag.Float64("panel-az", 0, "Panel azimuth in degrees (0 = South, East negative, West positive)")
	panelTilt := flag.Float64("panel-tilt", 30, "Panel tilt from horizontal in degrees (0-90)")
	panelArea := flag.Float64("panel-area", 10, "Panel area in m²")
	panelEff := flag.Float64("panel-eff", 0.2, "Panel conversion efficiency (0-1)")
	dni := flag.Float64("dni", 800, "Direct normal irradiance in W/m²")
	step := flag.Float64("step", 1, "Energy integration timestep in hours")

	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat output at interval (e.g., 30s)")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.Parse()

	if *lat < -90 || *lat > 90 {
		fmt.Fprintf(os.Stderr, "Error: latitude %v outside [-90, 90]\n", *lat)
		os.Exit(1)
	}
	if *lon < -180 || *lon > 180 {
		fmt.Fprintf(os.Stderr, "Error: longitude %v outside [-180, 180]\n", *lon)
		os.Exit(1)
	}

	at := time.Now().UTC()
	if *atStr != "" {
		parsed, err := time.Parse(time.RFC3339, *atStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: parsing -at: %v\n", err)
			os.Exit(1)
		}
		at = parsed.UTC()
	}

	var pc *report.PanelConfig
	if *panelMode {
		// Clamp orientation inputs to the model's contract.
		tilt := *panelTilt
		if tilt < 0 {
			tilt = 0
		} else if tilt > 90 {
			tilt = 90
		}
		eff := *panelEff
		if eff < 0 {
			eff = 0
		} else if eff > 1 {
			eff = 1
		}
		stepHours := *step
		if stepHours <= 0 {
			stepHours = 1
		}

		pc = &report.PanelConfig{
			Panel:      panel.Panel{LatDeg: *lat, LonDeg: *lon, AzimuthDeg: *panelAz, TiltDeg: tilt},
			AreaM2:     *panelArea,
			Efficiency: eff,
			DNI:        *dni,
			StepHours:  stepHours,
		}
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(*logLevel))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Headless mode: no TUI. A non-terminal stdout also forces headless.
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if summaryMode || snapshotPath != "" || watchInterval > 0 || !isTTY {
		runHeadless(ctx, *lat, *lon, at, pc, logger)
		return
	}

	model := ui.New(*lat, *lon, at, pc)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles summary, snapshot, and watch output without a TUI.
func runHeadless(ctx context.Context, lat, lon float64, at time.Time, pc *report.PanelConfig, logger *logging.Logger) {
	// In watch mode each tick recomputes for the current instant; a fixed
	// -at only makes sense for a single run.
	fixedAt := watchInterval == 0

	outputOnce := func() error {
		now := at
		if !fixedAt {
			now = time.Now().UTC()
		}

		logger.Debug("Computing snapshot for %.4f, %.4f at %s", lat, lon, now.Format(time.RFC3339))

		snap, err := report.BuildSnapshot(lat, lon, now, pc)
		if err != nil {
			return err
		}

		if snapshotPath != "" {
			if snapshotPath == "-" {
				if err := snap.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(snapshotPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				if err := snap.WriteJSON(f); err != nil {
					f.Close()
					return fmt.Errorf("write JSON to file: %w", err)
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("close snapshot file: %w", err)
				}
			}
		}

		if summaryMode || snapshotPath == "" {
			report.WriteSummary(os.Stdout, snap)
		}

		return nil
	}

	// Single run
	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval
	if err := outputOnce(); err != nil {
		logger.Error("Output failed: %v", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watch loop shutting down")
			return
		case <-ticker.C:
			fmt.Println() // Blank line between outputs
			if err := outputOnce(); err != nil {
				logger.Error("Output failed: %v", err)
			}
		}
	}
}
