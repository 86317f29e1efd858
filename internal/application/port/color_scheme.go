package port

import "github.com/bnema/schemer/internal/domain/entity"

//go:generate mockgen -destination=mocks/mock_color_scheme.go -package=mocks github.com/bnema/schemer/internal/application/port ColorSchemeResolver,ColorSchemeDetector

// SchemeList is the ordered, read-only set of entries shown by the scheme picker.
// Implementations must be non-empty and must not repeat a scheme.
type SchemeList interface {
	// Size returns the number of entries. Constant for the list's lifetime.
	Size() int

	// Label returns the display text of entry i.
	Label(i int) string

	// Scheme returns the scheme tag of entry i.
	Scheme(i int) entity.ColorScheme
}

// ColorSchemeDetector detects the desktop's dark/light preference.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	// Recommended ranges:
	//   -  50+: Desktop settings (gsettings)
	//   -  10+: Environment hints (GTK_THEME, COLORFGBG)
	Priority() int

	// Available returns true if this detector can be used on this machine.
	Available() bool

	// Detect returns the detected preference and whether detection succeeded.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeResolver turns a selected scheme into the palette to use.
type ColorSchemeResolver interface {
	// Resolve maps Day and Night directly and asks the detectors for System.
	// If all detectors fail, defaults to dark mode.
	Resolve(scheme entity.ColorScheme) entity.EffectiveScheme

	// RegisterDetector adds a detector to the resolver.
	RegisterDetector(detector ColorSchemeDetector)

	// Refresh re-evaluates the effective scheme for the given selection and
	// notifies OnChange callbacks if the palette flipped.
	Refresh(scheme entity.ColorScheme) entity.EffectiveScheme

	// OnChange registers a callback for effective scheme changes.
	// Returns a function to unregister the callback.
	OnChange(callback func(entity.EffectiveScheme)) func()
}
