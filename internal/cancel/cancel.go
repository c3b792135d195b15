// Package cancel provides cancellation signals for polling loops.
//
// Callers that want to give up on a full or empty queue poll TryPush/TryPop
// and check a Canceler between attempts. Two implementations are offered:
//   - ContextCanceler: wraps context.Context, for callers that already have one
//   - AtomicCanceler: a single atomic.Bool, cheap enough to check every spin
//
// The atomic approach is significantly faster in polling hot-loops where
// Done() is called millions of times per second.
package cancel

import "errors"

// ErrCanceled is returned by AtomicCanceler.Err after Cancel.
var ErrCanceled = errors.New("cancel: canceled")

// Canceler provides cancellation signaling to workers.
//
// Implementations must be safe for concurrent use:
//   - Multiple goroutines may call Done() or Err() concurrently
//   - Cancel() may be called concurrently with Done()
type Canceler interface {
	// Done returns true if cancellation has been triggered.
	Done() bool

	// Cancel triggers cancellation. Safe to call multiple times.
	Cancel()

	// Err returns nil until cancellation, then the reason for it.
	Err() error
}
