package cancel

import "sync/atomic"

// AtomicCanceler uses an atomic.Bool for cancellation signaling.
//
// Each call to Done() performs a single atomic load, which is much faster
// than a channel select. It is what the pipeline producer checks between
// push attempts once its consumer has failed.
type AtomicCanceler struct {
	done atomic.Bool
}

// NewAtomic creates a new AtomicCanceler.
func NewAtomic() *AtomicCanceler {
	return &AtomicCanceler{}
}

// Done returns true if cancellation has been triggered.
func (a *AtomicCanceler) Done() bool {
	return a.done.Load()
}

// Cancel triggers cancellation.
//
// Safe to call multiple times; subsequent calls are no-ops.
func (a *AtomicCanceler) Cancel() {
	a.done.Store(true)
}

// Err returns ErrCanceled once Cancel has been called.
func (a *AtomicCanceler) Err() error {
	if a.done.Load() {
		return ErrCanceled
	}
	return nil
}

// Reset clears the cancellation flag.
//
// Not safe to call concurrently with Done() or Cancel().
func (a *AtomicCanceler) Reset() {
	a.done.Store(false)
}
