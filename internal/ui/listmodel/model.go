// Package listmodel provides the single-selection list model behind the color
// scheme picker. Widgets query rows by position and role, forward check
// gestures through SetData, and observe DataChanged/CurrentChanged events.
//
// The model is owned by one UI goroutine and is not safe for concurrent use.
package listmodel

import (
	"errors"
	"fmt"

	"github.com/bnema/schemer/internal/application/port"
	"github.com/bnema/schemer/internal/domain/entity"
)

// ErrOutOfRange is wrapped by the IndexError panics raised on invalid rows.
var ErrOutOfRange = errors.New("row out of range")

// IndexError is the panic value for accesses outside [0, Size).
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("listmodel: row %d out of range [0,%d)", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

// ColorSchemeModel tracks which entry of a SchemeList is selected.
type ColorSchemeModel struct {
	list         port.SchemeList
	currentIndex int

	dataChanged    observers[DataChange]
	currentChanged observers[CurrentChange]
}

// New creates a model over list with the first entry selected.
// It panics if list is nil, empty, or repeats a scheme.
func New(list port.SchemeList) *ColorSchemeModel {
	if list == nil || list.Size() == 0 {
		panic("listmodel: scheme list must not be empty")
	}
	for i := 1; i < list.Size(); i++ {
		for j := 0; j < i; j++ {
			if list.Scheme(i) == list.Scheme(j) {
				panic(fmt.Sprintf("listmodel: scheme %s listed at rows %d and %d", list.Scheme(i), j, i))
			}
		}
	}
	return &ColorSchemeModel{list: list}
}

// NewColorSchemeModel creates a model over the default System / Day / Night list.
func NewColorSchemeModel(tr port.Translator) *ColorSchemeModel {
	return New(NewDefaultSchemeList(tr))
}

// Size returns the number of entries.
func (m *ColorSchemeModel) Size() int {
	return m.list.Size()
}

// Label returns the display text of row i. Panics with *IndexError if i is invalid.
func (m *ColorSchemeModel) Label(i int) string {
	m.mustBeValid(i)
	return m.list.Label(i)
}

// Scheme returns the scheme tag of row i. Panics with *IndexError if i is invalid.
func (m *ColorSchemeModel) Scheme(i int) entity.ColorScheme {
	m.mustBeValid(i)
	return m.list.Scheme(i)
}

// IndexOf returns the first row holding scheme.
func (m *ColorSchemeModel) IndexOf(scheme entity.ColorScheme) (int, bool) {
	for i := 0; i < m.list.Size(); i++ {
		if m.list.Scheme(i) == scheme {
			return i, true
		}
	}
	return -1, false
}

// CurrentIndex returns the selected row.
func (m *ColorSchemeModel) CurrentIndex() int {
	return m.currentIndex
}

// CurrentLabel returns the label of the selected row.
func (m *ColorSchemeModel) CurrentLabel() string {
	return m.list.Label(m.currentIndex)
}

// CurrentScheme returns the scheme of the selected row.
func (m *ColorSchemeModel) CurrentScheme() entity.ColorScheme {
	return m.list.Scheme(m.currentIndex)
}

// SetCurrentIndex selects row i.
//
// Selecting the current row does nothing. Otherwise the new and the old row
// each get a DataChanged event for CheckStateRole, followed by one
// CurrentChanged event. Panics with *IndexError if i is invalid.
func (m *ColorSchemeModel) SetCurrentIndex(i int) {
	if m.currentIndex == i {
		return
	}
	m.mustBeValid(i)

	old := m.currentIndex
	m.currentIndex = i

	m.dataChanged.emit(DataChange{First: i, Last: i, Roles: []Role{CheckStateRole}})
	m.dataChanged.emit(DataChange{First: old, Last: old, Roles: []Role{CheckStateRole}})
	m.currentChanged.emit(CurrentChange{Previous: old, Current: i})
}

// SetCurrentScheme selects the first row holding scheme.
// If no row holds it the selection is left alone and false is returned.
func (m *ColorSchemeModel) SetCurrentScheme(scheme entity.ColorScheme) bool {
	i, ok := m.IndexOf(scheme)
	if !ok {
		return false
	}
	m.SetCurrentIndex(i)
	return true
}

// IsChecked reports whether row is the selected one.
func (m *ColorSchemeModel) IsChecked(row int) bool {
	return row == m.currentIndex
}

// CheckState returns Checked for the selected row and Unchecked otherwise.
func (m *ColorSchemeModel) CheckState(row int) CheckState {
	if m.IsChecked(row) {
		return Checked
	}
	return Unchecked
}

// OnDataChanged registers fn for row data changes.
// Returns a function to unregister it.
func (m *ColorSchemeModel) OnDataChanged(fn func(DataChange)) func() {
	return m.dataChanged.add(fn)
}

// OnCurrentChanged registers fn for selection moves.
// Returns a function to unregister it.
func (m *ColorSchemeModel) OnCurrentChanged(fn func(CurrentChange)) func() {
	return m.currentChanged.add(fn)
}

func (m *ColorSchemeModel) valid(i int) bool {
	return i >= 0 && i < m.list.Size()
}

func (m *ColorSchemeModel) mustBeValid(i int) {
	if !m.valid(i) {
		panic(&IndexError{Index: i, Size: m.list.Size()})
	}
}
