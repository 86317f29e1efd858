package colorscheme

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/schemer/internal/domain/entity"
)

// mockDetector implements port.ColorSchemeDetector for testing.
type mockDetector struct {
	name        string
	priority    int
	available   bool
	prefersDark bool
	detectOk    bool
}

func (m *mockDetector) Name() string         { return m.name }
func (m *mockDetector) Priority() int        { return m.priority }
func (m *mockDetector) Available() bool      { return m.available }
func (m *mockDetector) Detect() (bool, bool) { return m.prefersDark, m.detectOk }

func TestResolver_ExplicitSelectionSkipsDetectors(t *testing.T) {
	resolver := NewResolver()
	resolver.RegisterDetector(&mockDetector{name: "light", priority: 100, available: true, detectOk: true})

	day := resolver.Resolve(entity.ColorSchemeDay)
	assert.False(t, day.PrefersDark)
	assert.Equal(t, "selection", day.Source)

	night := resolver.Resolve(entity.ColorSchemeNight)
	assert.True(t, night.PrefersDark)
	assert.Equal(t, "selection", night.Source)
}

func TestResolver_SystemUsesDetectorPriority(t *testing.T) {
	tests := []struct {
		name       string
		detectors  []*mockDetector
		wantDark   bool
		wantSource string
	}{
		{
			name: "highest priority wins regardless of order",
			detectors: []*mockDetector{
				{name: "low", priority: 10, available: true, prefersDark: true, detectOk: true},
				{name: "high", priority: 100, available: true, prefersDark: false, detectOk: true},
			},
			wantDark:   false,
			wantSource: "high",
		},
		{
			name: "unavailable detector is skipped",
			detectors: []*mockDetector{
				{name: "unavailable", priority: 100, available: false, detectOk: true},
				{name: "available", priority: 10, available: true, prefersDark: true, detectOk: true},
			},
			wantDark:   true,
			wantSource: "available",
		},
		{
			name: "failed detection is skipped",
			detectors: []*mockDetector{
				{name: "failing", priority: 100, available: true, detectOk: false},
				{name: "succeeding", priority: 10, available: true, prefersDark: false, detectOk: true},
			},
			wantDark:   false,
			wantSource: "succeeding",
		},
		{
			name:       "no detectors falls back to dark",
			wantDark:   true,
			wantSource: "fallback",
		},
		{
			name: "all failing falls back to dark",
			detectors: []*mockDetector{
				{name: "fail1", priority: 100, available: true, detectOk: false},
				{name: "fail2", priority: 50, available: false},
			},
			wantDark:   true,
			wantSource: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver()
			for _, d := range tt.detectors {
				resolver.RegisterDetector(d)
			}

			pref := resolver.Resolve(entity.ColorSchemeSystem)

			assert.Equal(t, tt.wantDark, pref.PrefersDark)
			assert.Equal(t, tt.wantSource, pref.Source)
		})
	}
}

func TestResolver_OnChange(t *testing.T) {
	resolver := NewResolver()
	detector := &mockDetector{name: "test", priority: 50, available: true, detectOk: true}
	resolver.RegisterDetector(detector)

	var got entity.EffectiveScheme
	var calls int
	unregister := resolver.OnChange(func(pref entity.EffectiveScheme) {
		got = pref
		calls++
	})

	// Initial state is dark; detector says light.
	resolver.Refresh(entity.ColorSchemeSystem)
	assert.Equal(t, 1, calls)
	assert.False(t, got.PrefersDark)

	resolver.Refresh(entity.ColorSchemeSystem)
	assert.Equal(t, 1, calls, "same palette must not notify")

	resolver.Refresh(entity.ColorSchemeNight)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "selection", got.Source)
	assert.Equal(t, got, resolver.Current())

	unregister()
	resolver.Refresh(entity.ColorSchemeDay)
	assert.Equal(t, 2, calls)
}

func TestResolver_ConcurrentAccess(_ *testing.T) {
	resolver := NewResolver()
	resolver.RegisterDetector(&mockDetector{name: "test", priority: 50, available: true, detectOk: true})

	var wg sync.WaitGroup
	const goroutines = 10

	for i := 0; i < goroutines; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				resolver.Resolve(entity.ColorSchemeSystem)
			}
		}()
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				resolver.Refresh(entity.AllColorSchemes()[(id+j)%3])
			}
		}(i)
		go func(id int) {
			defer wg.Done()
			resolver.RegisterDetector(&mockDetector{
				name:        "concurrent",
				priority:    id,
				available:   true,
				prefersDark: id%2 == 0,
				detectOk:    true,
			})
		}(i)
	}

	wg.Wait()
}
