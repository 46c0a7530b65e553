package session

import (
	"errors"

	"github.com/pixelsmith/raster-edit-mcp/internal/raster"
)

// UndoCapacity is the fixed ceiling on retained undo entries. Each entry is
// a full buffer clone, so the cap bounds memory, not edit count. It is not
// configurable at this layer.
const UndoCapacity = 20

// ErrHistoryEmpty reports a pop from an empty undo or redo stack. Callers
// are expected to consult CanUndo/CanRedo first; popping anyway is a
// precondition violation, not a silent no-op.
var ErrHistoryEmpty = errors.New("history stack is empty")

// History holds the undo and redo stacks of buffer snapshots for one
// session. The zero value is not usable; call NewHistory. History is not
// safe for concurrent use on its own; the owning Session serializes access.
type History struct {
	undo []*raster.Buffer
	redo []*raster.Buffer
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// PushUndo stores an independent clone of buf on the undo stack. When the
// stack would exceed UndoCapacity, the oldest entries are evicted so exactly
// the most recent UndoCapacity snapshots remain, still in push order.
func (h *History) PushUndo(buf *raster.Buffer) {
	h.undo = append(h.undo, buf.Clone())
	if excess := len(h.undo) - UndoCapacity; excess > 0 {
		copy(h.undo, h.undo[excess:])
		// Nil the vacated tail so evicted buffers can be collected.
		for i := UndoCapacity; i < len(h.undo); i++ {
			h.undo[i] = nil
		}
		h.undo = h.undo[:UndoCapacity]
	}
}

// PushRedo stores an independent clone of buf on the redo stack. The redo
// stack has no capacity limit.
func (h *History) PushRedo(buf *raster.Buffer) {
	h.redo = append(h.redo, buf.Clone())
}

// PopUndo removes and returns the most recently pushed undo snapshot.
// Fails with ErrHistoryEmpty on an empty stack.
func (h *History) PopUndo() (*raster.Buffer, error) {
	n := len(h.undo)
	if n == 0 {
		return nil, ErrHistoryEmpty
	}
	buf := h.undo[n-1]
	h.undo[n-1] = nil
	h.undo = h.undo[:n-1]
	return buf, nil
}

// PopRedo removes and returns the most recently pushed redo snapshot.
// Fails with ErrHistoryEmpty on an empty stack.
func (h *History) PopRedo() (*raster.Buffer, error) {
	n := len(h.redo)
	if n == 0 {
		return nil, ErrHistoryEmpty
	}
	buf := h.redo[n-1]
	h.redo[n-1] = nil
	h.redo = h.redo[:n-1]
	return buf, nil
}

// ClearRedo drops every redo snapshot. Called when a new edit forks the
// timeline.
func (h *History) ClearRedo() {
	for i := range h.redo {
		h.redo[i] = nil
	}
	h.redo = h.redo[:0]
}

// Clear drops both stacks. Called when a session is reinitialized by a load.
func (h *History) Clear() {
	for i := range h.undo {
		h.undo[i] = nil
	}
	h.undo = h.undo[:0]
	h.ClearRedo()
}

// CanUndo reports whether the undo stack holds at least one snapshot.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether the redo stack holds at least one snapshot.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoDepth returns the number of retained undo snapshots.
func (h *History) UndoDepth() int {
	return len(h.undo)
}

// RedoDepth returns the number of retained redo snapshots.
func (h *History) RedoDepth() int {
	return len(h.redo)
}
