//go:build linux

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// pin calls sched_setaffinity(2) for thread 0, i.e. the calling thread.
func pin(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: pin to cpu %d: %w", cpu, err)
	}
	return nil
}
