// Package colorscheme resolves a System selection to the desktop's light or dark preference.
package colorscheme

import (
	"sort"
	"sync"

	"github.com/bnema/schemer/internal/application/port"
	"github.com/bnema/schemer/internal/domain/entity"
)

const (
	// sourceFallback indicates no detector provided the preference.
	sourceFallback = "fallback"
	// sourceSelection indicates the user picked Day or Night explicitly.
	sourceSelection = "selection"
)

// callbackWrapper wraps a callback function to enable pointer comparison for removal.
type callbackWrapper struct {
	fn func(entity.EffectiveScheme)
}

// Resolver implements port.ColorSchemeResolver.
type Resolver struct {
	mu        sync.RWMutex
	detectors []port.ColorSchemeDetector
	current   entity.EffectiveScheme
	callbacks []*callbackWrapper
}

var _ port.ColorSchemeResolver = (*Resolver)(nil)

// NewResolver creates a resolver with no detectors.
func NewResolver() *Resolver {
	return &Resolver{
		detectors: make([]port.ColorSchemeDetector, 0),
		current: entity.EffectiveScheme{
			PrefersDark: true, // Default to dark until first Refresh()
			Source:      sourceFallback,
		},
	}
}

// NewDefaultResolver creates a resolver with the built-in detectors registered.
func NewDefaultResolver() *Resolver {
	r := NewResolver()
	r.RegisterDetector(NewGsettingsDetector())
	r.RegisterDetector(NewEnvDetector())
	r.RegisterDetector(NewTerminalDetector())
	return r
}

// Resolve implements port.ColorSchemeResolver.
func (r *Resolver) Resolve(scheme entity.ColorScheme) entity.EffectiveScheme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveInternal(scheme)
}

// resolveInternal performs the actual resolution without locking.
// Caller must hold at least a read lock.
func (r *Resolver) resolveInternal(scheme entity.ColorScheme) entity.EffectiveScheme {
	switch scheme {
	case entity.ColorSchemeDay:
		return entity.EffectiveScheme{PrefersDark: false, Source: sourceSelection}
	case entity.ColorSchemeNight:
		return entity.EffectiveScheme{PrefersDark: true, Source: sourceSelection}
	}

	// Sort detectors by priority (highest first)
	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return entity.EffectiveScheme{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}
		}
	}

	return entity.EffectiveScheme{
		PrefersDark: true,
		Source:      sourceFallback,
	}
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Refresh implements port.ColorSchemeResolver.
func (r *Resolver) Refresh(scheme entity.ColorScheme) entity.EffectiveScheme {
	r.mu.Lock()

	next := r.resolveInternal(scheme)
	changed := next.PrefersDark != r.current.PrefersDark
	r.current = next

	if !changed {
		r.mu.Unlock()
		return next
	}

	// Invoke callbacks outside of lock
	callbacks := make([]*callbackWrapper, len(r.callbacks))
	copy(callbacks, r.callbacks)
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(next)
	}
	return next
}

// Current returns the result of the last Refresh.
func (r *Resolver) Current() entity.EffectiveScheme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// OnChange implements port.ColorSchemeResolver.
func (r *Resolver) OnChange(callback func(entity.EffectiveScheme)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}
