package colorscheme

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 50
	gsettingsTimeout      = 2 * time.Second
)

// GsettingsDetector detects color scheme from GNOME gsettings.
type GsettingsDetector struct {
	run func(ctx context.Context) ([]byte, error)
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: queryGsettings}
}

func queryGsettings(ctx context.Context) ([]byte, error) {
	return exec.CommandContext(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector.
// Returns true if gsettings command is available.
func (*GsettingsDetector) Available() bool {
	_, err := exec.LookPath("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
// Queries org.gnome.desktop.interface color-scheme.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), gsettingsTimeout)
	defer cancel()

	output, err := d.run(ctx)
	if err != nil {
		return false, false
	}
	return parseGsettingsScheme(string(output))
}

// parseGsettingsScheme interprets output like "'prefer-dark'\n".
// "default" means the desktop expresses no preference.
func parseGsettingsScheme(output string) (prefersDark, ok bool) {
	result := strings.Trim(strings.TrimSpace(output), "'\"")

	switch result {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}
