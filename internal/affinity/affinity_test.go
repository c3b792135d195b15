package affinity_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/randomizedcoder/spsc-ring/internal/affinity"
)

func TestPin_NoCPU(t *testing.T) {
	if err := affinity.Pin(affinity.NoCPU); err != nil {
		t.Fatalf("Pin(NoCPU) = %v, want nil", err)
	}
}

// TestPin_CPU0 pins a throwaway goroutine. It exits while still locked, so
// the runtime discards the pinned thread instead of reusing it.
func TestPin_CPU0(t *testing.T) {
	errc := make(chan error, 1)
	go func() {
		runtime.LockOSThread()
		errc <- affinity.Pin(0)
	}()

	err := <-errc
	switch {
	case err == nil:
	case errors.Is(err, affinity.ErrUnsupported):
		t.Skip("pinning not supported on " + runtime.GOOS)
	default:
		// Restricted containers may refuse sched_setaffinity
		t.Skipf("Pin(0) refused by the OS: %v", err)
	}
}

func TestNumCPU(t *testing.T) {
	if affinity.NumCPU() < 1 {
		t.Fatalf("NumCPU() = %d", affinity.NumCPU())
	}
}
