package queue_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/randomizedcoder/spsc-ring/internal/cancel"
	"github.com/randomizedcoder/spsc-ring/internal/queue"
)

func TestPushTimeout_Full(t *testing.T) {
	q := queue.MustRingBuffer[int](2)
	q.Push(1)

	start := time.Now()
	err := queue.PushTimeout[int](q, 2, 20*time.Millisecond)
	if !errors.Is(err, queue.Full) {
		t.Fatalf("expected queue.Full, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("gave up after %v, before the timeout", elapsed)
	}
	if q.Len() != 1 {
		t.Errorf("expected Len() = 1 after timeout, got %d", q.Len())
	}
}

func TestPopTimeout_Empty(t *testing.T) {
	q := queue.NewRing256[int]()

	_, err := queue.PopTimeout[int](q, 10*time.Millisecond)
	if !errors.Is(err, queue.Empty) {
		t.Fatalf("expected queue.Empty, got %v", err)
	}
}

func TestPollTimeout_Succeeds(t *testing.T) {
	q := queue.NewRing256[int]()

	if err := queue.PushTimeout[int](q, 5, time.Second); err != nil {
		t.Fatalf("PushTimeout: %v", err)
	}
	v, err := queue.PopTimeout[int](q, time.Second)
	if err != nil || v != 5 {
		t.Fatalf("expected (5, nil), got (%d, %v)", v, err)
	}
}

func TestPushUntil_Canceled(t *testing.T) {
	q := queue.MustRingBuffer[int](2)
	q.Push(1)

	c := cancel.NewAtomic()
	go func() {
		time.Sleep(5 * time.Millisecond)
		c.Cancel()
	}()

	if err := queue.PushUntil[int](c, q, 2); !errors.Is(err, cancel.ErrCanceled) {
		t.Fatalf("expected cancel.ErrCanceled, got %v", err)
	}
}

func TestPopUntil_Delivers(t *testing.T) {
	q := queue.MustRingBuffer[int](8)
	c := cancel.NewAtomic()

	go func() {
		time.Sleep(5 * time.Millisecond)
		q.Push(9)
	}()

	v, err := queue.PopUntil[int](c, q)
	if err != nil || v != 9 {
		t.Fatalf("expected (9, nil), got (%d, %v)", v, err)
	}
}

func TestPopContext_Canceled(t *testing.T) {
	q := queue.NewRing256[int]()
	ctx, cancelFn := context.WithCancel(context.Background())
	cancelFn()

	if _, err := queue.PopContext[int](ctx, q); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPushContext_Deadline(t *testing.T) {
	q := queue.NewRing256[int]()
	for i := 0; i < q.Cap(); i++ {
		q.Push(i)
	}

	ctx, stop := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer stop()

	if err := queue.PushContext[int](ctx, q, -1); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestPushContext_Succeeds(t *testing.T) {
	q := queue.NewChannel[int](1)
	if err := queue.PushContext[int](context.Background(), q, 3); err != nil {
		t.Fatalf("PushContext: %v", err)
	}
	if v, ok := q.TryPop(); !ok || v != 3 {
		t.Fatalf("expected (3, true), got (%d, %v)", v, ok)
	}
}
