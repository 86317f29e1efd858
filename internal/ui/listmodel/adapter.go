package listmodel

// Widget-facing contract. Toolkit bindings (the bubbletea picker, a GTK list
// view) only talk to the model through these four methods.

// RowCount returns the number of rows.
func (m *ColorSchemeModel) RowCount() int {
	return m.list.Size()
}

// Flags returns the interaction flags for row. Invalid rows get NoItemFlags.
func (m *ColorSchemeModel) Flags(row int) ItemFlags {
	if !m.valid(row) {
		return NoItemFlags
	}
	return ItemIsSelectable | ItemIsEnabled | ItemIsUserCheckable
}

// Data returns the value of role for row.
// Invalid rows and unknown roles yield (nil, false).
func (m *ColorSchemeModel) Data(row int, role Role) (any, bool) {
	if !m.valid(row) {
		return nil, false
	}

	switch role {
	case CheckStateRole:
		return m.CheckState(row), true
	case DisplayRole:
		return m.list.Label(row), true
	default:
		return nil, false
	}
}

// SetData handles a check gesture from the widget.
// Only checking an unchecked, valid row is accepted; it selects that row.
// Unchecking, re-checking the current row, non-bool values and other roles
// are refused.
func (m *ColorSchemeModel) SetData(row int, value any, role Role) bool {
	if role != CheckStateRole || !m.valid(row) || row == m.currentIndex {
		return false
	}

	checked, ok := value.(bool)
	if !ok || !checked {
		return false
	}

	m.SetCurrentIndex(row)
	return true
}
