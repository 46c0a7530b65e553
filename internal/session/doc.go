// Package session owns the mutable state of an editing session: the current
// and original buffers, the dirty flag, and the undo/redo history.
//
// # State Machine
//
// A session starts empty. Load initializes it; Apply moves it to a dirty
// edited state; Undo and Redo walk the history; Reset restores the original;
// MarkSaved clears the dirty flag. A new Load reinitializes everything.
//
// # History
//
// The undo stack holds at most 20 entries. Pushing beyond that evicts the
// oldest entries, since each entry is a full pixel-buffer clone and unbounded
// history would grow without limit. The redo stack is unbounded and is
// cleared whenever a fresh edit is applied, which is what makes a stale redo
// chain unreachable after the timeline forks.
//
// # Concurrency
//
// At most one mutating operation (Load, Apply, Undo, Redo, Reset) runs at a
// time. A second mutating call arriving while one is in flight fails
// immediately with ErrBusy instead of queueing; rapid-fire parameter changes
// must not build a backlog. Read accessors are safe at any time because
// buffers are immutable once produced and the current pointer is swapped
// under a lock only after the replacement buffer is complete.
package session
