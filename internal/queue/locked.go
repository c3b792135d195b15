package queue

import (
	"sync"

	fifo "github.com/eapache/queue"
)

// LockedQueue is a mutex-guarded FIFO bounded to a fixed capacity.
//
// It is the lock-based baseline for the ring buffers: correct for any number
// of goroutines, but every operation takes the mutex. Storage is an
// eapache/queue, which grows its own power-of-two buffer on demand.
type LockedQueue[T any] struct {
	mu    sync.Mutex
	q     *fifo.Queue
	limit int
	spins int
}

// NewLocked creates a LockedQueue holding at most size items.
func NewLocked[T any](size int, opts ...Option) *LockedQueue[T] {
	if size < 1 {
		size = 1
	}
	c := newConfig(opts)
	return &LockedQueue[T]{
		q:     fifo.New(),
		limit: size,
		spins: c.spins,
	}
}

// TryPush adds an item.
// Returns false if the queue is full.
func (l *LockedQueue[T]) TryPush(v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.q.Length() >= l.limit {
		return false
	}
	l.q.Add(v)
	return true
}

// TryPop removes and returns the oldest item.
// Returns false if the queue is empty.
func (l *LockedQueue[T]) TryPop() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.q.Length() == 0 {
		var zero T
		return zero, false
	}
	v, _ := l.q.Remove().(T) // nil interface values come back as nil
	return v, true
}

// Push adds an item, spinning while the queue is full.
func (l *LockedQueue[T]) Push(v T) {
	b := backoff{spins: l.spins}
	for !l.TryPush(v) {
		b.wait()
	}
}

// Pop removes the oldest item, spinning while the queue is empty.
func (l *LockedQueue[T]) Pop() T {
	b := backoff{spins: l.spins}
	for {
		if v, ok := l.TryPop(); ok {
			return v
		}
		b.wait()
	}
}

// Len returns the current number of items in the queue.
func (l *LockedQueue[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Length()
}

// Cap returns the capacity of the queue.
func (l *LockedQueue[T]) Cap() int {
	return l.limit
}
