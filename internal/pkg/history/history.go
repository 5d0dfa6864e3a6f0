// Package history keeps an immutable undo/redo timeline of values.
package history

// History is a timeline of past states, a present state and undone future states.
// Every operation returns a new History and leaves the receiver untouched.
type History[T any] struct {
	past    []T
	present T
	future  []T
}

// New starts a timeline at initial with nothing to undo or redo
func New[T any](initial T) History[T] {
	return History[T]{present: initial}
}

// Present returns the current state
func (h History[T]) Present() T {
	return h.present
}

// Push records next as the new present. Any redo states are discarded.
func (h History[T]) Push(next T) History[T] {
	past := make([]T, len(h.past), len(h.past)+1)
	copy(past, h.past)
	return History[T]{
		past:    append(past, h.present),
		present: next,
	}
}

// Undo steps back one state. It reports false and returns h unchanged when there is no past.
func (h History[T]) Undo() (History[T], bool) {
	if len(h.past) == 0 {
		return h, false
	}

	last := len(h.past) - 1
	past := make([]T, last)
	copy(past, h.past[:last])

	future := make([]T, 0, len(h.future)+1)
	future = append(future, h.present)
	future = append(future, h.future...)

	return History[T]{past: past, present: h.past[last], future: future}, true
}

// Redo reapplies the most recently undone state. It reports false when there is none.
func (h History[T]) Redo() (History[T], bool) {
	if len(h.future) == 0 {
		return h, false
	}

	past := make([]T, len(h.past), len(h.past)+1)
	copy(past, h.past)

	future := make([]T, len(h.future)-1)
	copy(future, h.future[1:])

	return History[T]{past: append(past, h.present), present: h.future[0], future: future}, true
}

// CanUndo reports whether Undo would change the present
func (h History[T]) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether Redo would change the present
func (h History[T]) CanRedo() bool {
	return len(h.future) > 0
}

// Depth returns the number of undo and redo steps available
func (h History[T]) Depth() (undo, redo int) {
	return len(h.past), len(h.future)
}
