package queue

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// ring256Usable is the usable capacity of Ring256: 256 slots minus the one
// kept vacant to tell full from empty.
const ring256Usable uint8 = 255

// Ring256 is a lock-free SPSC queue with exactly 256 slots.
//
// Its cursors count in uint8, so incrementing past 255 wraps to 0 and the
// cursor value is the slot index with no masking. The ring is full when
// write+1 == read, which leaves at most 255 items queued.
//
// sync/atomic has no 8-bit type; the cursors live in atomic.Uint32 and every
// value stored there has already been truncated to uint8.
//
// WARNING: This queue is NOT safe for multiple producers or multiple consumers.
type Ring256[T any] struct {
	slots [256]T
	spins int

	_ cpu.CacheLinePad

	write atomic.Uint32 // Written by producer, read by consumer

	_ cpu.CacheLinePad

	read atomic.Uint32 // Written by consumer, read by producer

	_ cpu.CacheLinePad
}

// NewRing256 allocates an empty Ring256. The returned struct is the only
// allocation the ring ever makes.
func NewRing256[T any](opts ...Option) *Ring256[T] {
	c := newConfig(opts)
	return &Ring256[T]{spins: c.spins}
}

func (r *Ring256[T]) loadWrite() uint8 { return uint8(r.write.Load()) }
func (r *Ring256[T]) loadRead() uint8  { return uint8(r.read.Load()) }

// Push adds an item, spinning while the ring is full.
//
// SPSC CONTRACT: Only ONE goroutine may call Push() or TryPush().
func (r *Ring256[T]) Push(v T) {
	w := r.loadWrite()
	b := backoff{spins: r.spins}
	for isFull(w, r.loadRead(), ring256Usable) {
		b.wait()
	}
	r.slots[w] = v
	r.write.Store(uint32(w + 1))
}

// TryPush adds an item.
// Returns false if the ring is full.
//
// SPSC CONTRACT: Only ONE goroutine may call Push() or TryPush().
func (r *Ring256[T]) TryPush(v T) bool {
	w := r.loadWrite()
	if isFull(w, r.loadRead(), ring256Usable) {
		return false
	}
	r.slots[w] = v
	r.write.Store(uint32(w + 1))
	return true
}

// Pop removes and returns the oldest item, spinning while the ring is empty.
//
// SPSC CONTRACT: Only ONE goroutine may call Pop() or TryPop().
func (r *Ring256[T]) Pop() T {
	rd := r.loadRead()
	b := backoff{spins: r.spins}
	for isEmpty(r.loadWrite(), rd) {
		b.wait()
	}
	return r.take(rd)
}

// TryPop removes and returns the oldest item.
// Returns false if the ring is empty.
//
// SPSC CONTRACT: Only ONE goroutine may call Pop() or TryPop().
func (r *Ring256[T]) TryPop() (T, bool) {
	rd := r.loadRead()
	if isEmpty(r.loadWrite(), rd) {
		var zero T
		return zero, false
	}
	return r.take(rd), true
}

func (r *Ring256[T]) take(rd uint8) T {
	var zero T
	v := r.slots[rd]
	r.slots[rd] = zero
	r.read.Store(uint32(rd + 1))
	return v
}

// Len returns the number of queued items, computed in uint8.
// Like RingBuffer.Len it is only exact when neither side is mid-operation.
func (r *Ring256[T]) Len() int {
	rd := r.loadRead()
	w := r.loadWrite()
	return int(occupancy(w, rd))
}

// Cap returns the usable capacity (255).
func (r *Ring256[T]) Cap() int {
	return int(ring256Usable)
}

// Slots returns the number of physical slots (256).
func (r *Ring256[T]) Slots() int {
	return len(r.slots)
}
