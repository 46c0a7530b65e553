package session

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/pixelsmith/raster-edit-mcp/internal/analysis"
	"github.com/pixelsmith/raster-edit-mcp/internal/filter"
	"github.com/pixelsmith/raster-edit-mcp/internal/raster"
)

var (
	// ErrNoCurrentImage reports an edit attempted before any image was loaded.
	ErrNoCurrentImage = errors.New("no image loaded")

	// ErrNoOriginalImage reports a reset attempted before any image was loaded.
	ErrNoOriginalImage = errors.New("no original image to restore")

	// ErrBusy reports a mutating call made while another one is still in
	// flight. The call is rejected, never queued.
	ErrBusy = errors.New("another operation is in progress")
)

// Snapshot bundles the outcome of a completed session operation: the
// resulting buffer, its histogram, and the session flags a presentation
// layer needs to refresh its controls.
//
// Histogram is nil when histogram computation failed; that is a degraded
// result, not an error, and the edit it describes still committed.
type Snapshot struct {
	Buffer    *raster.Buffer
	Histogram *analysis.Histogram
	Dirty     bool
	CanUndo   bool
	CanRedo   bool
}

// Session is a single editing session: the current working buffer, the
// pristine original from the last load, the undo/redo history, and the
// unsaved-changes flag.
//
// All mutating methods are single-flight: a second mutating call while one
// is running fails with ErrBusy. Read accessors may be called at any time.
type Session struct {
	// busy is the single-flight guard for mutating operations. It is
	// acquired with a compare-and-swap so two racing calls cannot both
	// proceed, closing the check-then-run race a plain flag read would have.
	busy atomic.Bool

	mu       sync.RWMutex
	current  *raster.Buffer
	original *raster.Buffer
	history  *History
	dirty    bool
}

// New returns an empty session. Load must run before any edit.
func New() *Session {
	return &Session{history: NewHistory()}
}

// acquire claims the single-flight slot, failing with ErrBusy when another
// mutating operation holds it.
func (s *Session) acquire() error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}

func (s *Session) release() {
	s.busy.Store(false)
}

// Load initializes the session with buf: the original and current buffers
// become independent clones of it, both history stacks are cleared, and the
// dirty flag is reset.
//
// Fails with raster.ErrInvalidDimensions if buf violates the layout
// invariant and with ErrBusy if another mutating operation is in flight. On
// failure the previous session state is untouched.
func (s *Session) Load(buf *raster.Buffer) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	if len(buf.Pix) != buf.Width*buf.Height*raster.BytesPerPixel {
		return fmt.Errorf("load %dx%d with %d bytes: %w",
			buf.Width, buf.Height, len(buf.Pix), raster.ErrInvalidDimensions)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.original = buf.Clone()
	s.current = buf.Clone()
	s.history.Clear()
	s.dirty = false
	return nil
}

// Apply runs the named filter over the current buffer and commits the result
// as the new current buffer. The pre-edit buffer is pushed onto the undo
// stack, the redo stack is cleared, and the session becomes dirty.
//
// The transform itself runs outside the state lock; the single-flight guard
// guarantees no other mutation can interleave, and the finished buffer is
// swapped in atomically, so readers only ever observe complete images.
func (s *Session) Apply(kind filter.Kind, params filter.Params) (*Snapshot, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	s.mu.RLock()
	src := s.current
	s.mu.RUnlock()
	if src == nil {
		return nil, ErrNoCurrentImage
	}

	result, err := filter.Apply(src, kind, params)
	if err != nil {
		return nil, fmt.Errorf("apply %s: %w", kind, err)
	}

	s.mu.Lock()
	s.history.PushUndo(src)
	s.history.ClearRedo()
	s.current = result
	s.dirty = true
	s.mu.Unlock()

	return s.snapshot(), nil
}

// Undo steps back one edit: the current buffer moves to the redo stack and
// the most recent undo snapshot becomes current. The session stays dirty
// only while older undo entries remain.
//
// Fails with ErrHistoryEmpty when there is nothing to undo.
func (s *Session) Undo() (*Snapshot, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	s.mu.Lock()
	if !s.history.CanUndo() {
		s.mu.Unlock()
		return nil, ErrHistoryEmpty
	}
	s.history.PushRedo(s.current)
	prev, err := s.history.PopUndo()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.current = prev
	s.dirty = s.history.CanUndo()
	s.mu.Unlock()

	return s.snapshot(), nil
}

// Redo reapplies the most recently undone edit: the current buffer is pushed
// onto the undo stack (without clearing the remaining redo chain, so further
// redos stay replayable) and the top redo snapshot becomes current.
//
// Fails with ErrHistoryEmpty when there is nothing to redo.
func (s *Session) Redo() (*Snapshot, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	s.mu.Lock()
	if !s.history.CanRedo() {
		s.mu.Unlock()
		return nil, ErrHistoryEmpty
	}
	s.history.PushUndo(s.current)
	next, err := s.history.PopRedo()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.current = next
	s.dirty = true
	s.mu.Unlock()

	return s.snapshot(), nil
}

// Reset restores the current buffer to a clone of the original from the last
// load. The pre-reset state is pushed onto the undo stack (a reset is itself
// undoable) and the redo stack is left alone. The session becomes clean.
//
// Fails with ErrNoOriginalImage before the first load.
func (s *Session) Reset() (*Snapshot, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	s.mu.Lock()
	if s.original == nil {
		s.mu.Unlock()
		return nil, ErrNoOriginalImage
	}
	s.history.PushUndo(s.current)
	s.current = s.original.Clone()
	s.dirty = false
	s.mu.Unlock()

	return s.snapshot(), nil
}

// MarkSaved clears the dirty flag without touching the buffers or history.
// Called by the presentation layer after it has persisted the current image.
func (s *Session) MarkSaved() {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()
}

// Current returns the current working buffer, or nil before the first load.
// The returned buffer must be treated as read-only.
func (s *Session) Current() *raster.Buffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Original returns the buffer from the last load, or nil before it.
// The returned buffer must be treated as read-only.
func (s *Session) Original() *raster.Buffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.original
}

// Dirty reports whether the session has unsaved changes.
func (s *Session) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// CanUndo reports whether an Undo call would succeed.
func (s *Session) CanUndo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.CanUndo()
}

// CanRedo reports whether a Redo call would succeed.
func (s *Session) CanRedo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.CanRedo()
}

// Status returns a snapshot of the current state without mutating it. Fails
// with ErrNoCurrentImage before the first load.
func (s *Session) Status() (*Snapshot, error) {
	s.mu.RLock()
	loaded := s.current != nil
	s.mu.RUnlock()
	if !loaded {
		return nil, ErrNoCurrentImage
	}
	return s.snapshot(), nil
}

// snapshot captures the post-operation state. Histogram failures degrade to
// a nil histogram; the operation that produced the buffer already committed
// and must not be reported as failed.
func (s *Session) snapshot() *Snapshot {
	s.mu.RLock()
	snap := &Snapshot{
		Buffer:  s.current,
		Dirty:   s.dirty,
		CanUndo: s.history.CanUndo(),
		CanRedo: s.history.CanRedo(),
	}
	s.mu.RUnlock()

	if hist, err := analysis.Compute(snap.Buffer); err == nil {
		snap.Histogram = hist
	}
	return snap
}
