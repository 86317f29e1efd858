package listmodel

// Role selects which piece of row data a widget asks for.
type Role int

const (
	// DisplayRole is the row's label.
	DisplayRole Role = iota
	// CheckStateRole is the row's CheckState.
	CheckStateRole
)

func (r Role) String() string {
	switch r {
	case DisplayRole:
		return "display"
	case CheckStateRole:
		return "check_state"
	default:
		return "unknown"
	}
}

// CheckState is the radio-button state of a row.
type CheckState int

const (
	Unchecked CheckState = iota
	Checked
)

func (c CheckState) String() string {
	if c == Checked {
		return "checked"
	}
	return "unchecked"
}

// ItemFlags describes how a widget may interact with a row.
type ItemFlags uint8

const (
	ItemIsSelectable ItemFlags = 1 << iota
	ItemIsEnabled
	ItemIsUserCheckable

	// NoItemFlags is returned for rows outside the model.
	NoItemFlags ItemFlags = 0
)

// Has reports whether all bits of flag are set.
func (f ItemFlags) Has(flag ItemFlags) bool {
	return f&flag == flag
}
