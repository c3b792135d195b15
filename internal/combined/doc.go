// Package combined provides benchmarks that drive the queues together with
// the cancel and tick packages, and against an external lock-free ring.
//
// These are closer to how the rings are used than the per-package
// micro-benchmarks: a consumer loop that checks for cancellation and a
// periodic tick around every pop, and a real second goroutine on the
// other end.
package combined
