// Package tick provides cheap periodic triggers for hot loops.
//
// Two implementations of the Ticker interface are provided:
//   - BatchTicker: Check the clock only every N operations
//   - AtomicTicker: Atomic timestamp comparison using runtime.nanotime
//
// The queue poll helpers use AtomicTicker as a deadline that costs a few
// nanoseconds per check, and the pipeline harness uses BatchTicker to emit
// progress without reading the clock on every item.
package tick

import "time"

// Ticker signals when a time interval has elapsed.
type Ticker interface {
	// Tick returns true if the interval has elapsed since the last tick.
	// This is a non-blocking check.
	Tick() bool

	// Reset resets the ticker to start a new interval from now.
	Reset()

	// Stop releases any resources held by the ticker.
	// After Stop, the ticker should not be used.
	Stop()
}

// DefaultInterval is how often the pipeline harness reports progress.
const DefaultInterval = 100 * time.Millisecond
