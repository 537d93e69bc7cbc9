package history

import (
	"github.com/pkg/errors"
)

// DefaultCapacity is the depth of both the undo and redo stacks.
const DefaultCapacity = 30

var ErrEmptyHistory = errors.New("nothing in history")

// History tracks undo and redo of states of type T.
//
// T should be a value type: History stores and hands out copies, so a state
// in one slot never aliases a state in another.
//
// History is not safe for concurrent use.
type History[T any] struct {
	undo *Stack[T]
	redo *Stack[T]

	// current is the live state.
	current T

	// previous is the last state recorded. It is what gets pushed onto undo by
	// the next RecordChange.
	previous    T
	hasPrevious bool
}

// New returns a History whose current state is initial. Nothing has been
// recorded yet, so initial is not undoable until RecordChange is called.
func New[T any](capacity int, initial T) *History[T] {
	return &History[T]{
		undo:    NewStack[T](capacity),
		redo:    NewStack[T](capacity),
		current: initial,
	}
}

// Current is the live state.
func (h *History[T]) Current() T {
	return h.current
}

// Record makes s the current state and logs the change.
func (h *History[T]) Record(s T) {
	h.current = s
	h.RecordChange()
}

// RecordChange logs the current state. The previously recorded state becomes
// undoable and any redo history is discarded.
func (h *History[T]) RecordChange() {
	if h.hasPrevious {
		h.undo.Push(h.previous)
	}

	h.previous = h.current
	h.hasPrevious = true

	h.redo.Clear()
}

// Undo restores the most recently recorded state before the current one.
//
// If there is nothing to undo it returns ErrEmptyHistory and leaves the
// current state alone.
func (h *History[T]) Undo() (T, error) {
	restored, ok := h.undo.Pop()
	if !ok {
		return h.current, errors.Wrap(ErrEmptyHistory, "undo")
	}

	h.redo.Push(h.current)
	h.current = restored
	h.previous = restored
	h.hasPrevious = true

	return h.current, nil
}

// Redo reapplies the most recently undone state.
//
// If there is nothing to redo it returns ErrEmptyHistory and leaves the
// current state alone.
func (h *History[T]) Redo() (T, error) {
	restored, ok := h.redo.Pop()
	if !ok {
		return h.current, errors.Wrap(ErrEmptyHistory, "redo")
	}

	h.undo.Push(h.current)
	h.current = restored
	h.previous = restored
	h.hasPrevious = true

	return h.current, nil
}

// Reset forgets all history and records fresh as the only state.
func (h *History[T]) Reset(fresh T) {
	h.undo.Clear()
	h.redo.Clear()

	h.current = fresh

	var zero T
	h.previous = zero
	h.hasPrevious = false

	h.RecordChange()
}

func (h *History[T]) UndoLen() int {
	return h.undo.Len()
}

func (h *History[T]) RedoLen() int {
	return h.redo.Len()
}

func (h *History[T]) CanUndo() bool {
	return h.undo.Len() > 0
}

func (h *History[T]) CanRedo() bool {
	return h.redo.Len() > 0
}

// Capacity is the maximum depth of the undo and redo stacks.
func (h *History[T]) Capacity() int {
	return h.undo.Cap()
}
