package queue

import "sync/atomic"

// Guarded wraps an SPSC queue with runtime guards that panic if the SPSC
// contract is violated. This catches bugs early during development at the
// cost of ~1-2ns and two extra atomics per operation.
//
// The producer methods (Push, TryPush) share one guard and the consumer
// methods (Pop, TryPop) share the other, so a producer and a consumer may
// still run at the same time.
type Guarded[T any] struct {
	q SPSC[T]

	pushActive atomic.Uint32
	popActive  atomic.Uint32
}

// Guard returns q wrapped with SPSC misuse detection.
func Guard[T any](q SPSC[T]) *Guarded[T] {
	return &Guarded[T]{q: q}
}

func (g *Guarded[T]) enterPush() {
	if !g.pushActive.CompareAndSwap(0, 1) {
		panic("queue: concurrent Push on SPSC queue - only one producer allowed")
	}
}

func (g *Guarded[T]) enterPop() {
	if !g.popActive.CompareAndSwap(0, 1) {
		panic("queue: concurrent Pop on SPSC queue - only one consumer allowed")
	}
}

// Push forwards to the wrapped queue under the producer guard.
func (g *Guarded[T]) Push(v T) {
	g.enterPush()
	defer g.pushActive.Store(0)
	g.q.Push(v)
}

// TryPush forwards to the wrapped queue under the producer guard.
func (g *Guarded[T]) TryPush(v T) bool {
	g.enterPush()
	defer g.pushActive.Store(0)
	return g.q.TryPush(v)
}

// Pop forwards to the wrapped queue under the consumer guard.
func (g *Guarded[T]) Pop() T {
	g.enterPop()
	defer g.popActive.Store(0)
	return g.q.Pop()
}

// TryPop forwards to the wrapped queue under the consumer guard.
func (g *Guarded[T]) TryPop() (T, bool) {
	g.enterPop()
	defer g.popActive.Store(0)
	return g.q.TryPop()
}

// Len returns the wrapped queue's length.
func (g *Guarded[T]) Len() int { return g.q.Len() }

// Cap returns the wrapped queue's capacity.
func (g *Guarded[T]) Cap() int { return g.q.Cap() }
