package queue

import "runtime"

// DefaultSpins is how many times a blocking operation re-reads the peer's
// cursor in a tight loop before it starts yielding the processor.
const DefaultSpins = 64

// Option configures a ring buffer.
type Option func(*config)

type config struct {
	spins int
}

func newConfig(opts []Option) config {
	c := config{spins: DefaultSpins}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithSpins sets the number of tight re-reads before Push or Pop begins
// calling runtime.Gosched on every miss. Zero yields immediately.
//
// This only trades CPU for wake-up latency; it never affects ordering.
func WithSpins(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.spins = n
	}
}

// backoff counts consecutive misses inside one blocking call.
//
// Yielding past the spin budget matters in Go: with GOMAXPROCS=1 a goroutine
// in a pure busy loop would keep its peer from ever running.
type backoff struct {
	n     int
	spins int
}

func (b *backoff) wait() {
	if b.n < b.spins {
		b.n++
		return
	}
	runtime.Gosched()
}
