package queue

// ChannelQueue wraps a buffered channel as an SPSC queue.
//
// This is the standard library approach. TryPush/TryPop perform a
// non-blocking channel operation via select with default; Push/Pop are
// plain channel sends and receives, so they park instead of spinning.
type ChannelQueue[T any] struct {
	ch chan T
}

// NewChannel creates a ChannelQueue with the specified buffer size.
func NewChannel[T any](size int) *ChannelQueue[T] {
	return &ChannelQueue[T]{
		ch: make(chan T, size),
	}
}

// Push adds an item, blocking while the channel buffer is full.
func (q *ChannelQueue[T]) Push(v T) {
	q.ch <- v
}

// TryPush adds an item to the queue.
// Returns false if the queue is full (non-blocking).
func (q *ChannelQueue[T]) TryPush(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Pop removes an item, blocking while the channel buffer is empty.
func (q *ChannelQueue[T]) Pop() T {
	return <-q.ch
}

// TryPop removes and returns an item from the queue.
// Returns false if the queue is empty (non-blocking).
func (q *ChannelQueue[T]) TryPop() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the current number of items in the queue.
func (q *ChannelQueue[T]) Len() int {
	return len(q.ch)
}

// Cap returns the capacity of the queue.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.ch)
}
