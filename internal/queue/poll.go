package queue

import (
	"context"
	"time"

	"github.com/randomizedcoder/spsc-ring/internal/cancel"
	"github.com/randomizedcoder/spsc-ring/internal/tick"
)

// The rings themselves never give up. These helpers layer cancellation and
// timeouts over TryPush/TryPop with the same backoff the blocking calls use.
// They obey the SPSC contract of whichever side they are called from.

// PushUntil retries TryPush until it succeeds or c is cancelled, in which
// case it returns c.Err().
func PushUntil[T any](c cancel.Canceler, q Queue[T], v T) error {
	b := backoff{spins: DefaultSpins}
	for !q.TryPush(v) {
		if c.Done() {
			return c.Err()
		}
		b.wait()
	}
	return nil
}

// PopUntil retries TryPop until it succeeds or c is cancelled, in which case
// it returns c.Err().
func PopUntil[T any](c cancel.Canceler, q Queue[T]) (T, error) {
	b := backoff{spins: DefaultSpins}
	for {
		if v, ok := q.TryPop(); ok {
			return v, nil
		}
		if c.Done() {
			var zero T
			return zero, c.Err()
		}
		b.wait()
	}
}

// PushContext is PushUntil driven by ctx. A push that succeeds on the first
// attempt returns nil even if ctx is already done.
func PushContext[T any](ctx context.Context, q Queue[T], v T) error {
	c := cancel.NewContext(ctx)
	defer c.Cancel()
	return PushUntil(c, q, v)
}

// PopContext is PopUntil driven by ctx.
func PopContext[T any](ctx context.Context, q Queue[T]) (T, error) {
	c := cancel.NewContext(ctx)
	defer c.Cancel()
	return PopUntil(c, q)
}

// PushTimeout retries TryPush for up to d. It returns Full if the queue
// stayed full for the whole interval.
func PushTimeout[T any](q Queue[T], v T, d time.Duration) error {
	deadline := tick.NewAtomicTicker(d)
	b := backoff{spins: DefaultSpins}
	for !q.TryPush(v) {
		if deadline.Tick() {
			return Full
		}
		b.wait()
	}
	return nil
}

// PopTimeout retries TryPop for up to d. It returns Empty if nothing was
// published during the interval.
func PopTimeout[T any](q Queue[T], d time.Duration) (T, error) {
	deadline := tick.NewAtomicTicker(d)
	b := backoff{spins: DefaultSpins}
	for {
		if v, ok := q.TryPop(); ok {
			return v, nil
		}
		if deadline.Tick() {
			var zero T
			return zero, Empty
		}
		b.wait()
	}
}
