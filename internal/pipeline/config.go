package pipeline

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/randomizedcoder/spsc-ring/internal/affinity"
	"github.com/randomizedcoder/spsc-ring/internal/queue"
	"github.com/randomizedcoder/spsc-ring/internal/tick"
)

// Variant names a queue implementation the harness can drive.
type Variant string

const (
	Ring256 Variant = "ring256" // queue.Ring256
	Ring    Variant = "ring"    // queue.RingBuffer
	Channel Variant = "channel" // queue.ChannelQueue
	Locked  Variant = "locked"  // queue.LockedQueue
)

// Variants lists every supported Variant.
func Variants() []Variant {
	return []Variant{Ring256, Ring, Channel, Locked}
}

// ErrConfig is wrapped by every Config.Validate failure.
var ErrConfig = errors.New("pipeline: invalid config")

// Config describes one producer/consumer run.
type Config struct {
	Variant Variant
	Count   int // values 0..Count-1 are pushed in order

	// Slots is the physical slot count. Ring256 ignores it. The channel and
	// locked baselines get Slots-1 so every variant holds the same number
	// of items.
	Slots int
	Spins int // see queue.WithSpins

	ProducerCPU int // affinity.NoCPU to leave the thread unpinned
	ConsumerCPU int

	// Progress, if set, receives a line roughly every ProgressInterval.
	Progress         io.Writer
	ProgressInterval time.Duration
}

// DefaultConfig mirrors the classic stress run: 50000 ints through a
// 256-slot ring with no pinning.
func DefaultConfig() Config {
	return Config{
		Variant:          Ring256,
		Count:            50000,
		Slots:            256,
		Spins:            queue.DefaultSpins,
		ProducerCPU:      affinity.NoCPU,
		ConsumerCPU:      affinity.NoCPU,
		ProgressInterval: tick.DefaultInterval,
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrConfig, c.Count)
	}
	if c.Spins < 0 {
		return fmt.Errorf("%w: spins must not be negative, got %d", ErrConfig, c.Spins)
	}
	switch c.Variant {
	case Ring256:
	case Ring:
		if _, err := queue.NewRingBuffer[int](c.Slots); err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}
	case Channel, Locked:
		if c.Slots < 2 {
			return fmt.Errorf("%w: slots must be at least 2, got %d", ErrConfig, c.Slots)
		}
	default:
		return fmt.Errorf("%w: unknown variant %q", ErrConfig, c.Variant)
	}
	if c.Progress != nil && c.ProgressInterval <= 0 {
		return fmt.Errorf("%w: progress interval must be positive", ErrConfig)
	}
	return nil
}

// NewQueue builds the queue c describes. c must be valid.
func (c Config) NewQueue() (queue.SPSC[int], error) {
	spins := queue.WithSpins(c.Spins)
	switch c.Variant {
	case Ring256:
		return queue.NewRing256[int](spins), nil
	case Ring:
		return queue.NewRingBuffer[int](c.Slots, spins)
	case Channel:
		return queue.NewChannel[int](c.Slots - 1), nil
	case Locked:
		return queue.NewLocked[int](c.Slots-1, spins), nil
	}
	return nil, fmt.Errorf("%w: unknown variant %q", ErrConfig, c.Variant)
}
