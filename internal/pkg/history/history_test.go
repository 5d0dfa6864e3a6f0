package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHasNothingToUndoOrRedo(t *testing.T) {
	h := New("a")

	assert.Equal(t, "a", h.Present())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	same, ok := h.Undo()
	assert.False(t, ok)
	assert.Equal(t, "a", same.Present())

	same, ok = h.Redo()
	assert.False(t, ok)
	assert.Equal(t, "a", same.Present())
}

func TestPushUndoRedoRoundTrip(t *testing.T) {
	h := New(1).Push(2).Push(3)

	undone, ok := h.Undo()
	assert.True(t, ok)
	assert.Equal(t, 2, undone.Present())
	assert.True(t, undone.CanRedo())

	redone, ok := undone.Redo()
	assert.True(t, ok)
	assert.Equal(t, 3, redone.Present())
	assert.False(t, redone.CanRedo())

	undo, redo := redone.Depth()
	assert.Equal(t, 2, undo)
	assert.Equal(t, 0, redo)
}

func TestPushClearsFuture(t *testing.T) {
	h := New(1).Push(2)
	h, _ = h.Undo()
	assert.True(t, h.CanRedo())

	h = h.Push(5)
	assert.False(t, h.CanRedo())
	assert.Equal(t, 5, h.Present())

	h, _ = h.Undo()
	assert.Equal(t, 1, h.Present())
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	base := New("x").Push("y")

	_ = base.Push("z")
	_, _ = base.Undo()

	assert.Equal(t, "y", base.Present())
	undo, redo := base.Depth()
	assert.Equal(t, 1, undo)
	assert.Equal(t, 0, redo)

	// Branching from the same past must not leak between branches
	left := base.Push("l")
	right := base.Push("r")
	leftBack, _ := left.Undo()
	rightBack, _ := right.Undo()
	assert.Equal(t, "y", leftBack.Present())
	assert.Equal(t, "y", rightBack.Present())
}

func TestUndoAllTheWayBack(t *testing.T) {
	h := New(0)
	for i := 1; i <= 5; i++ {
		h = h.Push(i)
	}

	for i := 4; i >= 0; i-- {
		var ok bool
		h, ok = h.Undo()
		assert.True(t, ok)
		assert.Equal(t, i, h.Present())
	}

	_, ok := h.Undo()
	assert.False(t, ok)

	_, redo := h.Depth()
	assert.Equal(t, 5, redo)
}
