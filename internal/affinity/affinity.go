// Package affinity pins the calling OS thread to a logical CPU.
//
// A producer and a consumer that spin on each other's cursors hand items off
// fastest when each owns a core. Callers must hold runtime.LockOSThread for
// the pin to stay attached to their goroutine.
package affinity

import (
	"errors"
	"runtime"
)

// ErrUnsupported is returned by Pin on platforms without thread affinity.
var ErrUnsupported = errors.New("affinity: CPU pinning not supported on " + runtime.GOOS)

// NoCPU disables pinning when passed to Pin.
const NoCPU = -1

// Pin binds the current OS thread to cpu. A negative cpu is a no-op.
func Pin(cpu int) error {
	if cpu < 0 {
		return nil
	}
	return pin(cpu)
}

// NumCPU returns the number of logical CPUs usable by the process.
func NumCPU() int {
	return runtime.NumCPU()
}
