// Package history keeps a linear undo/redo chain of snapshots.
package history

// History is a time-ordered chain of snapshots with a movable cursor.
//
// Entries are the snapshots pushed before each committed action. The cursor
// is the position of the live value: entries[cursor] after navigating back,
// or len(entries) while the live value is newer than every entry. The live
// value at the tip is remembered on the first Undo so that Redo can return
// to it; it is never counted as an entry.
type History[T any] struct {
	entries []T
	cursor  int
	tip     T
}

func New[T any]() *History[T] {
	return &History[T]{}
}

// Push records a snapshot taken before a committed action. Any redo branch
// is discarded.
func (h *History[T]) Push(snapshot T) {
	h.entries = append(h.entries[:h.cursor], snapshot)
	h.cursor = len(h.entries)
	var zero T
	h.tip = zero
}

// Undo steps back one entry. live is the value the caller currently holds;
// it becomes the redo target when leaving the tip. ok is false at the
// earliest entry.
func (h *History[T]) Undo(live T) (snapshot T, ok bool) {
	if h.cursor == 0 {
		return snapshot, false
	}
	if h.cursor == len(h.entries) {
		h.tip = live
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Redo steps forward one entry. ok is false at the latest entry.
func (h *History[T]) Redo() (snapshot T, ok bool) {
	if h.cursor >= len(h.entries) {
		return snapshot, false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return h.tip, true
	}
	return h.entries[h.cursor], true
}

func (h *History[T]) CanUndo() bool {
	return h.cursor > 0
}

func (h *History[T]) CanRedo() bool {
	return h.cursor < len(h.entries)
}

// Len is the number of recorded entries, one per committed action.
func (h *History[T]) Len() int {
	return len(h.entries)
}

// Cursor is the position of the live value in the chain.
func (h *History[T]) Cursor() int {
	return h.cursor
}

// Clear drops every entry.
func (h *History[T]) Clear() {
	*h = History[T]{}
}
