package listmodel

// DataChange reports that rows First..Last (inclusive) changed for Roles.
type DataChange struct {
	First int
	Last  int
	Roles []Role
}

// Contains reports whether row lies in the changed range.
func (d DataChange) Contains(row int) bool {
	return row >= d.First && row <= d.Last
}

// CurrentChange reports a move of the single selection.
type CurrentChange struct {
	Previous int
	Current  int
}

// observers is an ordered callback registry. Removal is by pointer identity
// so the same func value can be registered twice.
type observers[T any] struct {
	callbacks []*observer[T]
}

type observer[T any] struct {
	fn func(T)
}

func (o *observers[T]) add(fn func(T)) func() {
	w := &observer[T]{fn: fn}
	o.callbacks = append(o.callbacks, w)

	return func() {
		for i, cb := range o.callbacks {
			if cb == w {
				o.callbacks = append(o.callbacks[:i], o.callbacks[i+1:]...)
				return
			}
		}
	}
}

func (o *observers[T]) emit(ev T) {
	// Snapshot so callbacks may unregister themselves.
	snapshot := make([]*observer[T], len(o.callbacks))
	copy(snapshot, o.callbacks)
	for _, cb := range snapshot {
		cb.fn(ev)
	}
}
