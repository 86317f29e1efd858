package colorscheme

import (
	"os"
	"strings"
)

const (
	detectorNameEnv = "GTK_THEME"
	priorityEnv     = 20
)

// EnvDetector detects color scheme from GTK_THEME environment variable.
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates a new environment variable-based detector.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Available implements port.ColorSchemeDetector.
func (d *EnvDetector) Available() bool {
	return d.getenv("GTK_THEME") != ""
}

// Detect implements port.ColorSchemeDetector.
// Themes named like "Adwaita:dark" or "Arc-Dark" count as dark.
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	gtkTheme := d.getenv("GTK_THEME")
	if gtkTheme == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(gtkTheme), "dark"), true
}
