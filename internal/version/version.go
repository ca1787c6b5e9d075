// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Panel model: incidence angle, monthly energy integrator, energy bars in TUI
// 0.1.0 - Initial release: solar geometry core, sunrise/sunset, TUI dashboard, headless modes
