package listmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorSchemeModel_Flags(t *testing.T) {
	m := NewColorSchemeModel(nil)

	assert.True(t, m.Flags(0).Has(ItemIsUserCheckable))
	assert.True(t, m.Flags(2).Has(ItemIsEnabled|ItemIsSelectable))
	assert.Equal(t, NoItemFlags, m.Flags(3))
	assert.Equal(t, NoItemFlags, m.Flags(-1))
}

func TestColorSchemeModel_Data(t *testing.T) {
	m := NewColorSchemeModel(nil)
	m.SetCurrentIndex(1)

	tests := []struct {
		name   string
		row    int
		role   Role
		want   any
		wantOK bool
	}{
		{"label", 2, DisplayRole, "Night", true},
		{"checked row", 1, CheckStateRole, Checked, true},
		{"unchecked row", 0, CheckStateRole, Unchecked, true},
		{"invalid row", 3, DisplayRole, nil, false},
		{"negative row", -1, CheckStateRole, nil, false},
		{"unknown role", 0, Role(99), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Data(tt.row, tt.role)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, 3, m.RowCount())
}

func TestColorSchemeModel_SetData(t *testing.T) {
	tests := []struct {
		name        string
		row         int
		value       any
		role        Role
		wantHandled bool
		wantCurrent int
	}{
		{"check other row", 2, true, CheckStateRole, true, 2},
		{"check current row", 0, true, CheckStateRole, false, 0},
		{"uncheck row", 2, false, CheckStateRole, false, 0},
		{"non bool value", 2, Checked, CheckStateRole, false, 0},
		{"display role", 2, true, DisplayRole, false, 0},
		{"invalid row", 5, true, CheckStateRole, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewColorSchemeModel(nil)
			r := record(m)

			handled := m.SetData(tt.row, tt.value, tt.role)

			assert.Equal(t, tt.wantHandled, handled)
			assert.Equal(t, tt.wantCurrent, m.CurrentIndex())
			if tt.wantHandled {
				assert.Equal(t, []CurrentChange{{Previous: 0, Current: tt.row}}, r.current)
			} else {
				assert.Empty(t, r.current)
				assert.Empty(t, r.data)
			}
		})
	}
}

func TestDataChange_Contains(t *testing.T) {
	d := DataChange{First: 1, Last: 2}
	assert.False(t, d.Contains(0))
	assert.True(t, d.Contains(1))
	assert.True(t, d.Contains(2))
	assert.False(t, d.Contains(3))
}
