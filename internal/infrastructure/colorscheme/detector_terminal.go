package colorscheme

import (
	"os"
	"strconv"
	"strings"
)

const (
	detectorNameTerminal = "COLORFGBG"
	priorityTerminal     = 10
)

// TerminalDetector reads the COLORFGBG hint exported by rxvt, konsole and friends.
// The last field is the background palette index; 0-6 and 8 are dark colors.
type TerminalDetector struct {
	getenv func(string) string
}

// NewTerminalDetector creates a COLORFGBG-based detector.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*TerminalDetector) Name() string {
	return detectorNameTerminal
}

// Priority implements port.ColorSchemeDetector.
func (*TerminalDetector) Priority() int {
	return priorityTerminal
}

// Available implements port.ColorSchemeDetector.
func (d *TerminalDetector) Available() bool {
	return d.getenv("COLORFGBG") != ""
}

// Detect implements port.ColorSchemeDetector.
func (d *TerminalDetector) Detect() (prefersDark, ok bool) {
	fields := strings.Split(d.getenv("COLORFGBG"), ";")
	bg, err := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
	if err != nil || bg < 0 || bg > 15 {
		return false, false
	}
	return bg < 7 || bg == 8, true
}
