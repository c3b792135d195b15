package queue

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// RingBuffer is a lock-free SPSC queue over a power-of-two number of slots.
//
// The cursors are uint64 counters that are never masked; only the slot index
// is taken modulo the slot count. One slot always stays vacant, so a ring
// built with n slots holds at most n-1 items.
//
// WARNING: This queue is NOT safe for multiple producers or multiple consumers.
// A RingBuffer must not be copied once it is shared between goroutines.
type RingBuffer[T any] struct {
	buf    []T
	mask   uint64
	usable uint64
	spins  int

	// Cache line padding to prevent false sharing
	_ cpu.CacheLinePad

	write atomic.Uint64 // Written by producer, read by consumer

	_ cpu.CacheLinePad

	read atomic.Uint64 // Written by consumer, read by producer

	_ cpu.CacheLinePad
}

// NewRingBuffer creates a RingBuffer with the given number of slots.
// slots must be a power of two and at least 2; otherwise ErrCapacity is
// returned. The size is never rounded.
func NewRingBuffer[T any](slots int, opts ...Option) (*RingBuffer[T], error) {
	if slots < 2 || slots&(slots-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrCapacity, slots)
	}
	c := newConfig(opts)
	n := uint64(slots)
	return &RingBuffer[T]{
		buf:    make([]T, n),
		mask:   n - 1,
		usable: n - 1,
		spins:  c.spins,
	}, nil
}

// MustRingBuffer is like NewRingBuffer but panics on an invalid slot count.
func MustRingBuffer[T any](slots int, opts ...Option) *RingBuffer[T] {
	r, err := NewRingBuffer[T](slots, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Push adds an item, spinning while the ring is full.
//
// SPSC CONTRACT: Only ONE goroutine may call Push() or TryPush().
func (r *RingBuffer[T]) Push(v T) {
	w := r.write.Load()
	b := backoff{spins: r.spins}
	for isFull(w, r.read.Load(), r.usable) {
		b.wait()
	}
	r.buf[w&r.mask] = v
	// Publish: the slot write above is visible to whoever observes w+1.
	r.write.Store(w + 1)
}

// TryPush adds an item.
// Returns false if the ring is full.
//
// SPSC CONTRACT: Only ONE goroutine may call Push() or TryPush().
func (r *RingBuffer[T]) TryPush(v T) bool {
	w := r.write.Load()
	if isFull(w, r.read.Load(), r.usable) {
		return false
	}
	r.buf[w&r.mask] = v
	r.write.Store(w + 1)
	return true
}

// Pop removes and returns the oldest item, spinning while the ring is empty.
//
// SPSC CONTRACT: Only ONE goroutine may call Pop() or TryPop().
func (r *RingBuffer[T]) Pop() T {
	rd := r.read.Load()
	b := backoff{spins: r.spins}
	for isEmpty(r.write.Load(), rd) {
		b.wait()
	}
	return r.take(rd)
}

// TryPop removes and returns the oldest item.
// Returns false if the ring is empty.
//
// SPSC CONTRACT: Only ONE goroutine may call Pop() or TryPop().
func (r *RingBuffer[T]) TryPop() (T, bool) {
	rd := r.read.Load()
	if isEmpty(r.write.Load(), rd) {
		var zero T
		return zero, false
	}
	return r.take(rd), true
}

// take reads slot rd, clears it and hands it back to the producer.
func (r *RingBuffer[T]) take(rd uint64) T {
	var zero T
	i := rd & r.mask
	v := r.buf[i]
	r.buf[i] = zero // drop references held by the slot
	r.read.Store(rd + 1)
	return v
}

// Len returns the number of queued items.
// The two cursors are read separately, so under concurrent use this is an
// estimate that may be stale by the time it returns. Reading read first
// keeps it from going negative; the clamp keeps it within Cap.
func (r *RingBuffer[T]) Len() int {
	rd := r.read.Load()
	w := r.write.Load()
	return int(min(occupancy(w, rd), r.usable))
}

// Cap returns the usable capacity, Slots()-1.
func (r *RingBuffer[T]) Cap() int {
	return int(r.usable)
}

// Slots returns the number of physical slots.
func (r *RingBuffer[T]) Slots() int {
	return len(r.buf)
}
