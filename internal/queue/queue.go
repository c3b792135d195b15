// Package queue provides bounded single-producer single-consumer queues.
//
// Two lock-free ring buffers share one algorithm:
//   - Ring256: 8-bit cursors over exactly 256 slots; wraparound is native uint8 arithmetic
//   - RingBuffer: uint64 cursors over a power-of-two slot count, masked on access
//
// ChannelQueue and LockedQueue implement the same interfaces and exist as
// baselines for tests and benchmarks.
//
// # SPSC Contract (IMPORTANT)
//
// Exactly ONE goroutine may call Push/TryPush and exactly ONE goroutine may
// call Pop/TryPop for the lifetime of a ring. The ring does not check this.
// Wrap a queue with Guard while debugging to turn misuse into a panic.
//
// Both rings keep one slot vacant so that full and empty stay distinguishable:
// Cap() is always Slots()-1.
package queue

// Queue is the non-blocking side of an SPSC queue.
type Queue[T any] interface {
	// TryPush adds an item to the queue.
	// Returns false if the queue is full; nothing is modified in that case.
	TryPush(T) bool

	// TryPop removes and returns the oldest item.
	// Returns false if the queue is empty; nothing is modified in that case.
	TryPop() (T, bool)

	// Len returns a snapshot of the number of queued items.
	Len() int

	// Cap returns the maximum number of items the queue holds.
	Cap() int
}

// SPSC is a Queue that also offers blocking Push and Pop.
//
// Push waits while the queue is full and Pop waits while it is empty.
// Neither can fail; they stall for as long as the peer makes no progress.
type SPSC[T any] interface {
	Queue[T]

	Push(T)
	Pop() T
}
