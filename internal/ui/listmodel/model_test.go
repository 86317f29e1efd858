package listmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/schemer/internal/application/port"
	"github.com/bnema/schemer/internal/domain/entity"
)

// recorder captures model events in emission order.
type recorder struct {
	data    []DataChange
	current []CurrentChange
}

func record(m *ColorSchemeModel) *recorder {
	r := &recorder{}
	m.OnDataChanged(func(d DataChange) { r.data = append(r.data, d) })
	m.OnCurrentChanged(func(c CurrentChange) { r.current = append(r.current, c) })
	return r
}

// fixedList is a SchemeList without System, used to exercise lookup misses.
type fixedList []schemeItem

func (l fixedList) Size() int                       { return len(l) }
func (l fixedList) Label(i int) string              { return l[i].text }
func (l fixedList) Scheme(i int) entity.ColorScheme { return l[i].scheme }

func recoverIndexError(t *testing.T, fn func()) *IndexError {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	require.NotNil(t, got, "expected a panic")
	err, ok := got.(*IndexError)
	require.True(t, ok, "panic value %T is not *IndexError", got)
	require.ErrorIs(t, err, ErrOutOfRange)
	return err
}

func TestNewColorSchemeModel_Defaults(t *testing.T) {
	m := NewColorSchemeModel(nil)

	require.Equal(t, 3, m.Size())
	assert.Equal(t, 0, m.CurrentIndex())
	assert.Equal(t, "System", m.CurrentLabel())
	assert.Equal(t, entity.ColorSchemeSystem, m.CurrentScheme())

	assert.Equal(t, []string{"System", "Day", "Night"}, []string{m.Label(0), m.Label(1), m.Label(2)})
	assert.Equal(t, entity.AllColorSchemes(), []entity.ColorScheme{m.Scheme(0), m.Scheme(1), m.Scheme(2)})
}

func TestNewColorSchemeModel_TranslatedLabels(t *testing.T) {
	tr := port.TranslatorFunc(func(key string) string {
		return map[string]string{"System": "Système", "Day": "Jour", "Night": "Nuit"}[key]
	})
	m := NewColorSchemeModel(tr)

	assert.Equal(t, "Jour", m.Label(1))
	assert.Equal(t, "Nuit", m.Label(2))
}

func TestNew_PanicsOnEmptyList(t *testing.T) {
	assert.Panics(t, func() { New(fixedList{}) })
	assert.Panics(t, func() { New(nil) })
	assert.PanicsWithValue(t, "listmodel: scheme night listed at rows 0 and 2", func() {
		New(fixedList{
			{text: "Night", scheme: entity.ColorSchemeNight},
			{text: "Day", scheme: entity.ColorSchemeDay},
			{text: "Dark", scheme: entity.ColorSchemeNight},
		})
	})
	assert.NotPanics(t, func() {
		New(fixedList{{text: "Day", scheme: entity.ColorSchemeDay}, {text: "Night", scheme: entity.ColorSchemeNight}})
	})
}

func TestColorSchemeModel_IndexOfRoundTrip(t *testing.T) {
	m := NewColorSchemeModel(nil)
	for i := 0; i < m.Size(); i++ {
		idx, ok := m.IndexOf(m.Scheme(i))
		require.True(t, ok)
		assert.Equal(t, m.Scheme(i), m.Scheme(idx))
	}
}

func TestColorSchemeModel_SetCurrentIndex_EmitsOnce(t *testing.T) {
	m := NewColorSchemeModel(nil)
	r := record(m)

	m.SetCurrentIndex(1)

	assert.Equal(t, 1, m.CurrentIndex())
	assert.Equal(t, []DataChange{
		{First: 1, Last: 1, Roles: []Role{CheckStateRole}},
		{First: 0, Last: 0, Roles: []Role{CheckStateRole}},
	}, r.data)
	assert.Equal(t, []CurrentChange{{Previous: 0, Current: 1}}, r.current)

	m.SetCurrentIndex(1)
	assert.Len(t, r.data, 2, "selecting the current row must not notify")
	assert.Len(t, r.current, 1)
}

func TestColorSchemeModel_SetCurrentIndex_OutOfRangePanics(t *testing.T) {
	tests := []int{-1, 3, 5}
	for _, idx := range tests {
		m := NewColorSchemeModel(nil)
		r := record(m)

		err := recoverIndexError(t, func() { m.SetCurrentIndex(idx) })

		assert.Equal(t, idx, err.Index)
		assert.Equal(t, 3, err.Size)
		assert.Equal(t, 0, m.CurrentIndex())
		assert.Empty(t, r.data)
		assert.Empty(t, r.current)
	}
}

func TestColorSchemeModel_AccessorsOutOfRangePanic(t *testing.T) {
	m := NewColorSchemeModel(nil)

	recoverIndexError(t, func() { m.Label(3) })
	recoverIndexError(t, func() { m.Scheme(-1) })

	list := NewDefaultSchemeList(nil)
	recoverIndexError(t, func() { list.Label(7) })
}

func TestColorSchemeModel_SetCurrentScheme(t *testing.T) {
	t.Run("present tag matches SetCurrentIndex", func(t *testing.T) {
		byScheme := NewColorSchemeModel(nil)
		byIndex := NewColorSchemeModel(nil)
		rs, ri := record(byScheme), record(byIndex)

		require.True(t, byScheme.SetCurrentScheme(entity.ColorSchemeDay))
		idx, _ := byIndex.IndexOf(entity.ColorSchemeDay)
		byIndex.SetCurrentIndex(idx)

		assert.Equal(t, byIndex.CurrentIndex(), byScheme.CurrentIndex())
		assert.Equal(t, ri.data, rs.data)
		assert.Equal(t, ri.current, rs.current)
	})

	t.Run("absent tag is ignored", func(t *testing.T) {
		m := New(fixedList{
			{text: "Day", scheme: entity.ColorSchemeDay},
			{text: "Night", scheme: entity.ColorSchemeNight},
		})
		m.SetCurrentIndex(1)
		r := record(m)

		assert.False(t, m.SetCurrentScheme(entity.ColorSchemeSystem))
		assert.Equal(t, 1, m.CurrentIndex())
		assert.Empty(t, r.data)
		assert.Empty(t, r.current)
	})

	t.Run("current tag reports found without notifying", func(t *testing.T) {
		m := NewColorSchemeModel(nil)
		r := record(m)

		assert.True(t, m.SetCurrentScheme(entity.ColorSchemeSystem))
		assert.Empty(t, r.current)
	})
}

func TestColorSchemeModel_NightScenario(t *testing.T) {
	m := NewColorSchemeModel(nil)
	r := record(m)

	m.SetCurrentScheme(entity.ColorSchemeNight)
	assert.Equal(t, 2, m.CurrentIndex())
	assert.Equal(t, "Night", m.CurrentLabel())
	require.Len(t, r.current, 1)

	m.SetCurrentIndex(2)
	assert.Len(t, r.current, 1)
	assert.Len(t, r.data, 2)

	recoverIndexError(t, func() { m.SetCurrentIndex(5) })
	assert.Equal(t, 2, m.CurrentIndex())
}

func TestColorSchemeModel_CheckStateFollowsCurrent(t *testing.T) {
	m := NewColorSchemeModel(nil)
	for current := 0; current < m.Size(); current++ {
		m.SetCurrentIndex(current)
		for p := 0; p < m.Size(); p++ {
			assert.Equal(t, p == current, m.IsChecked(p))
			if p == current {
				assert.Equal(t, Checked, m.CheckState(p))
			} else {
				assert.Equal(t, Unchecked, m.CheckState(p))
			}
		}
	}
}

func TestColorSchemeModel_Unregister(t *testing.T) {
	m := NewColorSchemeModel(nil)
	calls := 0
	unregister := m.OnCurrentChanged(func(CurrentChange) { calls++ })

	m.SetCurrentIndex(1)
	unregister()
	m.SetCurrentIndex(2)

	assert.Equal(t, 1, calls)
}

func TestColorSchemeModel_CallbackMayUnregisterItself(t *testing.T) {
	m := NewColorSchemeModel(nil)
	var unregister func()
	calls, others := 0, 0
	unregister = m.OnCurrentChanged(func(CurrentChange) {
		calls++
		unregister()
	})
	m.OnCurrentChanged(func(CurrentChange) { others++ })

	m.SetCurrentIndex(1)
	m.SetCurrentIndex(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, others)
}
