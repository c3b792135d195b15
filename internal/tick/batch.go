package tick

import "time"

// BatchTicker reads the wall clock only on every Nth call to Tick.
//
// The pipeline consumer calls Tick once per popped value. With every=4096
// the clock costs one read per 4096 values, and a progress line is due
// whenever that read finds interval has passed since the last one.
//
// BatchTicker is not safe for concurrent use.
type BatchTicker struct {
	interval time.Duration
	every    int
	calls    int
	last     time.Time
}

// NewBatch returns a BatchTicker that fires at most once per interval and
// looks at the clock every `every` calls. every < 1 is treated as 1.
func NewBatch(interval time.Duration, every int) *BatchTicker {
	return &BatchTicker{
		interval: interval,
		every:    max(every, 1),
		last:     time.Now(),
	}
}

// Tick returns false without reading the clock except on every Nth call.
func (b *BatchTicker) Tick() bool {
	b.calls++
	if b.calls%b.every != 0 {
		return false
	}
	now := time.Now()
	if now.Sub(b.last) < b.interval {
		return false
	}
	b.last = now
	return true
}

// Reset clears the call count and restarts the interval.
func (b *BatchTicker) Reset() {
	b.calls = 0
	b.last = time.Now()
}

// Stop does nothing; BatchTicker holds no runtime timer.
func (b *BatchTicker) Stop() {}

// Every returns how many calls pass between clock reads.
func (b *BatchTicker) Every() int { return b.every }

// Interval returns the configured interval.
func (b *BatchTicker) Interval() time.Duration { return b.interval }
