package queue_test

import (
	"testing"

	"github.com/randomizedcoder/spsc-ring/internal/queue"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkInt int
var sinkBool bool

// Direct type benchmarks (true performance floor)

func BenchmarkQueue_Ring256_PushPop_Direct(b *testing.B) {
	q := queue.NewRing256[int]()
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val = q.Pop()
	}
	sinkInt = val
}

func BenchmarkQueue_RingBuffer_PushPop_Direct(b *testing.B) {
	q := queue.MustRingBuffer[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val = q.Pop()
	}
	sinkInt = val
}

func BenchmarkQueue_Channel_PushPop_Direct(b *testing.B) {
	q := queue.NewChannel[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val = q.Pop()
	}
	sinkInt = val
}

func BenchmarkQueue_Locked_PushPop_Direct(b *testing.B) {
	q := queue.NewLocked[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val = q.Pop()
	}
	sinkInt = val
}

// Interface benchmarks (with dynamic dispatch overhead)

func benchmarkInterface(b *testing.B, q queue.Queue[int]) {
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.TryPush(i)
		val, ok = q.TryPop()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkQueue_Ring256_TryPushPop_Interface(b *testing.B) {
	benchmarkInterface(b, queue.NewRing256[int]())
}

func BenchmarkQueue_RingBuffer_TryPushPop_Interface(b *testing.B) {
	benchmarkInterface(b, queue.MustRingBuffer[int](1024))
}

func BenchmarkQueue_Guarded_TryPushPop_Interface(b *testing.B) {
	benchmarkInterface(b, queue.Guard[int](queue.MustRingBuffer[int](1024)))
}

// Different ring sizes

func BenchmarkQueue_RingBuffer_Fill_Size64(b *testing.B) {
	q := queue.MustRingBuffer[int](64)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		for q.TryPush(i) {
		}
		for q.Len() > 0 {
			val = q.Pop()
		}
	}
	sinkInt = val
}

func BenchmarkQueue_Ring256_Fill(b *testing.B) {
	q := queue.NewRing256[int]()
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		for q.TryPush(i) {
		}
		for q.Len() > 0 {
			val = q.Pop()
		}
	}
	sinkInt = val
}
