// Command spscstress pushes a sequence of integers through an SPSC queue
// from one thread and checks it comes out in order on another.
//
// Usage:
//
//	go run ./cmd/spscstress -variant ring256 -n 50000
//	go run ./cmd/spscstress -variant ring -slots 8192 -producer-cpu 2 -consumer-cpu 3 -json
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/sugawarayuuta/sonnet"

	"github.com/randomizedcoder/spsc-ring/internal/affinity"
	"github.com/randomizedcoder/spsc-ring/internal/pipeline"
	"github.com/randomizedcoder/spsc-ring/internal/queue"
)

func main() {
	def := pipeline.DefaultConfig()

	variant := flag.String("variant", string(def.Variant), "queue: "+variantList())
	count := flag.Int("n", def.Count, "number of values to push")
	slots := flag.Int("slots", def.Slots, "slot count (power of two for -variant ring)")
	spins := flag.Int("spins", queue.DefaultSpins, "tight re-reads before yielding")
	producerCPU := flag.Int("producer-cpu", affinity.NoCPU, "pin the producer thread to this CPU (-1 = no pin)")
	consumerCPU := flag.Int("consumer-cpu", affinity.NoCPU, "pin the consumer thread to this CPU (-1 = no pin)")
	timeout := flag.Duration("timeout", 0, "give up after this long; 0 uses the blocking Push/Pop path")
	progress := flag.Bool("progress", false, "print progress to stderr")
	asJSON := flag.Bool("json", false, "print the report as JSON")
	flag.Parse()

	cfg := pipeline.Config{
		Variant:          pipeline.Variant(*variant),
		Count:            *count,
		Slots:            *slots,
		Spins:            *spins,
		ProducerCPU:      *producerCPU,
		ConsumerCPU:      *consumerCPU,
		ProgressInterval: def.ProgressInterval,
	}
	if *progress {
		cfg.Progress = os.Stderr
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("spscstress: %v", err)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var stop context.CancelFunc
		ctx, stop = context.WithTimeout(ctx, *timeout)
		defer stop()
	}

	rep, err := pipeline.Run(ctx, cfg)
	var oe *pipeline.OrderError
	switch {
	case errors.As(err, &oe):
		log.Fatalf("spscstress: %s: %v", cfg.Variant, oe)
	case err != nil:
		log.Fatalf("spscstress: %v", err)
	}

	if *asJSON {
		out, err := sonnet.Marshal(rep)
		if err != nil {
			log.Fatalf("spscstress: encode report: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Printf("SPSC stress: %s (capacity %d)\n", rep.Variant, rep.Capacity)
	fmt.Println("─────────────────────────────────────────────────")
	fmt.Printf("  Values:      %d, all in order\n", rep.Count)
	fmt.Printf("  Elapsed:     %v\n", rep.Elapsed.Round(time.Microsecond))
	fmt.Printf("  Per value:   %.2f ns\n", rep.NsPerOp)
	fmt.Printf("  Throughput:  %.2f M values/sec\n", rep.OpsPerSec/1e6)
}

func variantList() string {
	names := make([]string, 0, len(pipeline.Variants()))
	for _, v := range pipeline.Variants() {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}
