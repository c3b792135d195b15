package tick

import (
	"sync/atomic"
	"time"
	_ "unsafe" // go:linkname
)

// nanotime is the runtime's monotonic clock. Reading it skips building a
// time.Time, which matters when a poll loop checks its deadline after every
// failed TryPush or TryPop.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// AtomicTicker fires once per interval measured on the monotonic clock.
//
// The poll helpers create one per call and treat the first true Tick as the
// deadline. The last firing time is kept in an atomic so a ticker may be
// checked from several goroutines; only one of them observes each firing.
type AtomicTicker struct {
	interval int64 // ns
	last     atomic.Int64
}

// NewAtomicTicker returns a ticker whose first interval starts now.
func NewAtomicTicker(interval time.Duration) *AtomicTicker {
	a := &AtomicTicker{interval: int64(interval)}
	a.last.Store(nanotime())
	return a
}

// Tick reports whether interval has passed since the ticker started or
// last fired. A true result restarts the interval.
func (a *AtomicTicker) Tick() bool {
	now := nanotime()
	last := a.last.Load()
	if now-last < a.interval {
		return false
	}
	return a.last.CompareAndSwap(last, now)
}

// Reset starts a new interval from now.
func (a *AtomicTicker) Reset() {
	a.last.Store(nanotime())
}

// Stop does nothing; AtomicTicker holds no runtime timer.
func (a *AtomicTicker) Stop() {}

// Interval returns the configured interval.
func (a *AtomicTicker) Interval() time.Duration {
	return time.Duration(a.interval)
}

// Elapsed returns the time since the ticker was created, last reset or last
// fired.
func (a *AtomicTicker) Elapsed() time.Duration {
	return time.Duration(nanotime() - a.last.Load())
}
