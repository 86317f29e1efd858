package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownScheme is returned when a scheme name cannot be parsed.
var ErrUnknownScheme = errors.New("unknown color scheme")

// ColorScheme identifies a selectable color scheme.
type ColorScheme int

const (
	// ColorSchemeSystem follows the desktop preference.
	ColorSchemeSystem ColorScheme = iota
	// ColorSchemeDay forces the light palette.
	ColorSchemeDay
	// ColorSchemeNight forces the dark palette.
	ColorSchemeNight
)

// AllColorSchemes returns every scheme in display order.
func AllColorSchemes() []ColorScheme {
	return []ColorScheme{ColorSchemeSystem, ColorSchemeDay, ColorSchemeNight}
}

// String returns the canonical config/storage name of the scheme.
func (s ColorScheme) String() string {
	switch s {
	case ColorSchemeSystem:
		return "system"
	case ColorSchemeDay:
		return "day"
	case ColorSchemeNight:
		return "night"
	default:
		return fmt.Sprintf("ColorScheme(%d)", int(s))
	}
}

// Valid reports whether s is one of the known schemes.
func (s ColorScheme) Valid() bool {
	return s >= ColorSchemeSystem && s <= ColorSchemeNight
}

// ParseColorScheme converts a user supplied name into a ColorScheme.
// The GNOME style names used by gsettings and older configs are accepted as aliases.
func ParseColorScheme(name string) (ColorScheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "system", "default", "auto":
		return ColorSchemeSystem, nil
	case "day", "light", "prefer-light":
		return ColorSchemeDay, nil
	case "night", "dark", "prefer-dark":
		return ColorSchemeNight, nil
	default:
		return ColorSchemeSystem, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}

// SchemePreference is the persisted user choice.
type SchemePreference struct {
	Scheme    ColorScheme
	UpdatedAt time.Time
}

// NewSchemePreference creates a preference stamped with the current time.
func NewSchemePreference(scheme ColorScheme) *SchemePreference {
	return &SchemePreference{
		Scheme:    scheme,
		UpdatedAt: time.Now(),
	}
}

// EffectiveScheme is what a System selection resolves to on this desktop.
type EffectiveScheme struct {
	// PrefersDark indicates whether the dark palette should be used.
	PrefersDark bool

	// Source identifies which detector decided. "selection" means the user
	// picked Day or Night explicitly; "fallback" means no detector answered.
	Source string
}

// Name returns "night" or "day" depending on PrefersDark.
func (e EffectiveScheme) Name() string {
	if e.PrefersDark {
		return ColorSchemeNight.String()
	}
	return ColorSchemeDay.String()
}
