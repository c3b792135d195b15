// Command spscbench compares the SPSC queue implementations.
//
// For each queue it measures push+pop on a single goroutine, then a
// two-goroutine producer/consumer pipeline.
//
// Usage:
//
//	go run ./cmd/spscbench -n 10000000 -size 1024
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/sugawarayuuta/sonnet"

	"github.com/randomizedcoder/spsc-ring/internal/affinity"
	"github.com/randomizedcoder/spsc-ring/internal/pipeline"
	"github.com/randomizedcoder/spsc-ring/internal/queue"
)

type result struct {
	Name          string  `json:"name"`
	Capacity      int     `json:"capacity"`
	PushPopNs     float64 `json:"push_pop_ns"`
	PipelineNs    float64 `json:"pipeline_ns"`
	PipelineMOpsS float64 `json:"pipeline_mops"`
}

type contender struct {
	variant pipeline.Variant
	create  func(slots int) queue.SPSC[int]
}

var contenders = []contender{
	{pipeline.Channel, func(n int) queue.SPSC[int] { return queue.NewChannel[int](n - 1) }},
	{pipeline.Locked, func(n int) queue.SPSC[int] { return queue.NewLocked[int](n - 1) }},
	{pipeline.Ring256, func(int) queue.SPSC[int] { return queue.NewRing256[int]() }},
	{pipeline.Ring, func(n int) queue.SPSC[int] { return queue.MustRingBuffer[int](n) }},
}

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	size := flag.Int("size", 1024, "slot count (power of two; ring256 always uses 256)")
	asJSON := flag.Bool("json", false, "print results as JSON")
	flag.Parse()

	if _, err := queue.NewRingBuffer[int](*size); err != nil {
		log.Fatalf("spscbench: -size: %v", err)
	}

	if !*asJSON {
		fmt.Printf("Benchmarking SPSC queues (%d iterations, size=%d)\n", *iterations, *size)
		fmt.Println("─────────────────────────────────────────────────")
	}

	results := make([]result, 0, len(contenders))
	for _, c := range contenders {
		q := c.create(*size)

		// Single goroutine: push + pop per iteration
		start := time.Now()
		for i := 0; i < *iterations; i++ {
			q.Push(i)
			q.Pop()
		}
		pushPop := time.Since(start)

		// Two goroutines: one producer, one consumer
		rep, err := pipeline.Run(context.Background(), pipeline.Config{
			Variant: c.variant,
			Count:   *iterations,
			Slots:   *size,
			Spins:   queue.DefaultSpins,

			ProducerCPU: affinity.NoCPU,
			ConsumerCPU: affinity.NoCPU,
		})
		if err != nil {
			log.Fatalf("spscbench: %s pipeline: %v", c.variant, err)
		}

		results = append(results, result{
			Name:          string(c.variant),
			Capacity:      q.Cap(),
			PushPopNs:     float64(pushPop.Nanoseconds()) / float64(*iterations),
			PipelineNs:    rep.NsPerOp,
			PipelineMOpsS: rep.OpsPerSec / 1e6,
		})
	}

	if *asJSON {
		out, err := sonnet.Marshal(results)
		if err != nil {
			log.Fatalf("spscbench: encode results: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	// Results
	fmt.Printf("\nResults:\n")
	fmt.Printf("  %-10s %8s %14s %14s %12s\n", "queue", "cap", "push+pop", "pipeline", "pipeline")
	baseline := results[0].PipelineNs
	for _, r := range results {
		fmt.Printf("  %-10s %8d %11.2f ns %11.2f ns %8.2f M/s  %6.2fx\n",
			r.Name, r.Capacity, r.PushPopNs, r.PipelineNs, r.PipelineMOpsS, baseline/r.PipelineNs)
	}

	fmt.Printf("\nNote: speedup is pipeline throughput relative to %s.\n", results[0].Name)
}
