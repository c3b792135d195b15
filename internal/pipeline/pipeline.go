// Package pipeline runs one producer and one consumer against an SPSC queue
// and checks that every value arrives exactly once and in order.
//
// The producer pushes 0..Count-1; the consumer expects the i-th value it pops
// to be i. Each role owns a locked OS thread, optionally pinned to a CPU, so
// the two sides really run in parallel.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/randomizedcoder/spsc-ring/internal/affinity"
	"github.com/randomizedcoder/spsc-ring/internal/cancel"
	"github.com/randomizedcoder/spsc-ring/internal/queue"
	"github.com/randomizedcoder/spsc-ring/internal/tick"
)

// progressEvery is how many pops pass between clock reads for progress.
const progressEvery = 4096

// OrderError reports the first value that arrived out of order.
type OrderError struct {
	Index int // position in the pop sequence
	Got   int // value popped there; Index was expected
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("pipeline: [%d] mismatch: %d", e.Index, e.Got)
}

// Report summarizes a completed run.
type Report struct {
	Variant   Variant       `json:"variant"`
	Count     int           `json:"count"`
	Capacity  int           `json:"capacity"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	NsPerOp   float64       `json:"ns_per_op"`
	OpsPerSec float64       `json:"ops_per_sec"`
}

// Run executes cfg and blocks until both roles have finished.
//
// With a context that can never be cancelled (ctx.Done() == nil) both sides
// use the blocking Push and Pop. Otherwise they poll through PushUntil and
// PopUntil so that cancelling ctx stops them; Run then returns ctx's error.
//
// On the first out-of-order value the consumer stops the producer and Run
// returns an *OrderError.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	q, err := cfg.NewQueue()
	if err != nil {
		return Report{}, err
	}
	return execute(ctx, cfg, q)
}

func execute(ctx context.Context, cfg Config, q queue.SPSC[int]) (Report, error) {
	r := &run{
		cfg:      cfg,
		q:        q,
		blocking: ctx.Done() == nil,
		stop:     cancel.NewContext(ctx),
		abort:    cancel.NewAtomic(),
		start:    make(chan struct{}),
		bound:    make(chan error, 2),
		produced: make(chan struct{}),
		consumed: make(chan error, 1),
	}
	defer r.stop.Cancel()

	go r.producer()
	go r.consumer()

	// Both threads must be set up before the clock starts.
	var bindErr error
	for i := 0; i < 2; i++ {
		if err := <-r.bound; err != nil && bindErr == nil {
			bindErr = err
		}
	}
	if bindErr != nil {
		r.abort.Cancel()
	}

	began := time.Now()
	close(r.start)
	runErr := <-r.consumed
	<-r.produced
	elapsed := time.Since(began)

	if bindErr != nil {
		return Report{}, bindErr
	}
	if runErr != nil {
		return Report{}, runErr
	}
	return newReport(cfg, q.Cap(), elapsed), nil
}

func newReport(cfg Config, capacity int, elapsed time.Duration) Report {
	rep := Report{
		Variant:  cfg.Variant,
		Count:    cfg.Count,
		Capacity: capacity,
		Elapsed:  elapsed,
	}
	if cfg.Count > 0 {
		rep.NsPerOp = float64(elapsed.Nanoseconds()) / float64(cfg.Count)
	}
	if s := elapsed.Seconds(); s > 0 {
		rep.OpsPerSec = float64(cfg.Count) / s
	}
	return rep
}

// run is the state shared by the two roles of one Run call.
type run struct {
	cfg      Config
	q        queue.SPSC[int]
	blocking bool

	stop  *cancel.ContextCanceler // caller's ctx
	abort *cancel.AtomicCanceler  // consumer -> producer after a failure

	start    chan struct{}
	bound    chan error
	produced chan struct{}
	consumed chan error
}

// bind locks the goroutine to its thread and pins it when cpu >= 0.
// It returns a release func to defer. A pinned thread is never handed back
// to the scheduler; the runtime discards it when the goroutine exits.
func bind(cpu int) (func(), error) {
	runtime.LockOSThread()
	release := func() {
		if cpu < 0 {
			runtime.UnlockOSThread()
		}
	}
	return release, affinity.Pin(cpu)
}

func (r *run) producer() {
	defer close(r.produced)
	release, err := bind(r.cfg.ProducerCPU)
	defer release()
	if err != nil {
		err = fmt.Errorf("pipeline: producer: %w", err)
	}
	r.bound <- err
	<-r.start

	for i := 0; i < r.cfg.Count; i++ {
		if r.abort.Done() || (!r.blocking && r.stop.Done()) {
			return
		}
		if r.blocking {
			r.q.Push(i)
			continue
		}
		if queue.PushUntil[int](r.stop, r.q, i) != nil {
			return
		}
	}
}

func (r *run) consumer() {
	release, err := bind(r.cfg.ConsumerCPU)
	defer release()
	if err != nil {
		err = fmt.Errorf("pipeline: consumer: %w", err)
	}
	r.bound <- err
	<-r.start

	if r.abort.Done() {
		r.drain()
		r.consumed <- nil
		return
	}

	err = r.consume()
	if err != nil {
		r.abort.Cancel()
		r.drain()
	}
	r.consumed <- err
}

func (r *run) consume() error {
	var progress *tick.BatchTicker
	if r.cfg.Progress != nil {
		progress = tick.NewBatch(r.cfg.ProgressInterval, progressEvery)
	}

	for i := 0; i < r.cfg.Count; i++ {
		var v int
		if r.blocking {
			v = r.q.Pop()
		} else {
			if r.stop.Done() {
				return r.stop.Err()
			}
			var err error
			if v, err = queue.PopUntil[int](r.stop, r.q); err != nil {
				return err
			}
		}
		if v != i {
			return &OrderError{Index: i, Got: v}
		}
		if progress != nil && progress.Tick() {
			fmt.Fprintf(r.cfg.Progress, "%s: %d/%d popped\n", r.cfg.Variant, i+1, r.cfg.Count)
		}
	}
	return nil
}

// drain keeps popping until the producer has returned, so a producer
// blocked in Push on a full queue can observe the abort.
func (r *run) drain() {
	for {
		select {
		case <-r.produced:
			return
		default:
		}
		if _, ok := r.q.TryPop(); !ok {
			runtime.Gosched()
		}
	}
}
