package cancel_test

import (
	"sync"
	"testing"
)

// TestCanceler_Race has pollers call Done and Err while another goroutine
// cancels, the way a stalled producer polls while its peer aborts it.
// Run with: go test -race ./internal/cancel
func TestCanceler_Race(t *testing.T) {
	for _, tc := range cancelers() {
		t.Run(tc.name, func(t *testing.T) {
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 10000; j++ {
						if tc.c.Done() && tc.c.Err() == nil {
							t.Error("Done() = true but Err() = nil")
							return
						}
					}
				}()
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				tc.c.Cancel()
			}()
			wg.Wait()

			if !tc.c.Done() {
				t.Error("expected Done() = true after Cancel()")
			}
		})
	}
}
