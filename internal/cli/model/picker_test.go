package model

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/schemer/internal/domain/entity"
	"github.com/bnema/schemer/internal/ui/listmodel"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m PickerModel, keys ...string) PickerModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(PickerModel)
		require.True(t, ok)
	}
	return m
}

func newPicker() (PickerModel, *listmodel.ColorSchemeModel) {
	lm := listmodel.NewColorSchemeModel(nil)
	return NewPickerModel(PickerConfig{Model: lm}), lm
}

func TestPicker_CursorStaysInBounds(t *testing.T) {
	m, _ := newPicker()

	m = press(t, m, "up")
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, "down", "j", "down", "down")
	assert.Equal(t, 2, m.Cursor())
}

func TestPicker_SelectChecksRow(t *testing.T) {
	m, lm := newPicker()

	var changes []listmodel.CurrentChange
	lm.OnCurrentChanged(func(c listmodel.CurrentChange) { changes = append(changes, c) })

	m = press(t, m, "down", "down", "enter")

	assert.Equal(t, entity.ColorSchemeNight, lm.CurrentScheme())
	assert.Equal(t, []listmodel.CurrentChange{{Previous: 0, Current: 2}}, changes)
	assert.Contains(t, m.View(), "Saved")
}

func TestPicker_SelectCurrentRowIsNoop(t *testing.T) {
	m, lm := newPicker()

	fired := false
	lm.OnCurrentChanged(func(listmodel.CurrentChange) { fired = true })

	m = press(t, m, " ")

	assert.False(t, fired)
	assert.NotContains(t, m.View(), "Saved")
}

func TestPicker_Messages(t *testing.T) {
	m, lm := newPicker()
	m.onFallback = func(s entity.ColorScheme) (entity.EffectiveScheme, bool) {
		lm.SetCurrentScheme(s)
		return entity.EffectiveScheme{PrefersDark: false, Source: "selection"}, true
	}

	next, _ := m.Update(FallbackMsg{Scheme: entity.ColorSchemeDay})
	m = next.(PickerModel)
	assert.Equal(t, 1, m.Cursor())
	assert.False(t, m.theme.Dark)
	assert.Equal(t, "day", m.effective.Name())

	next, _ = m.Update(EffectiveMsg{Effective: entity.EffectiveScheme{PrefersDark: true, Source: "selection"}})
	m = next.(PickerModel)
	assert.True(t, m.theme.Dark)
	assert.Contains(t, m.View(), "night")

	next, _ = m.Update(SaveErrMsg{Err: errors.New("database is locked")})
	m = next.(PickerModel)
	assert.Contains(t, m.View(), "database is locked")
}

func TestPicker_Quit(t *testing.T) {
	m, _ := newPicker()
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPicker_FallbackFollowsPalette(t *testing.T) {
	lm := listmodel.NewColorSchemeModel(nil)
	m := NewPickerModel(PickerConfig{
		Model:     lm,
		Effective: entity.EffectiveScheme{PrefersDark: false, Source: "selection"},
		OnFallback: func(s entity.ColorScheme) (entity.EffectiveScheme, bool) {
			lm.SetCurrentScheme(s)
			return entity.EffectiveScheme{PrefersDark: true, Source: "selection"}, true
		},
	})
	require.False(t, m.theme.Dark)

	next, _ := m.Update(FallbackMsg{Scheme: entity.ColorSchemeNight})
	m = next.(PickerModel)

	assert.Equal(t, 2, m.Cursor())
	assert.True(t, m.theme.Dark)
	assert.Contains(t, m.View(), "night")
}

func TestPicker_RevertedSelectionNotReportedSaved(t *testing.T) {
	m, lm := newPicker()
	lm.OnCurrentChanged(func(c listmodel.CurrentChange) {
		if c.Current == 1 {
			lm.SetCurrentIndex(c.Previous)
		}
	})

	m = press(t, m, "down", "enter")

	assert.Equal(t, 0, lm.CurrentIndex())
	assert.NotContains(t, m.View(), "Saved")
}
