package queue

import "testing"

// TestIsFull_Uint8MatchesAdjacency checks every pair of 8-bit cursors: the
// shared difference test must agree with the write+1 == read form.
func TestIsFull_Uint8MatchesAdjacency(t *testing.T) {
	for w := 0; w < 256; w++ {
		for r := 0; r < 256; r++ {
			wc, rc := uint8(w), uint8(r)
			if got, want := isFull(wc, rc, ring256Usable), wc+1 == rc; got != want {
				t.Fatalf("isFull(%d, %d) = %v, want %v", wc, rc, got, want)
			}
			if got, want := isEmpty(wc, rc), wc == rc; got != want {
				t.Fatalf("isEmpty(%d, %d) = %v, want %v", wc, rc, got, want)
			}
		}
	}
}

func TestOccupancy_Wraps(t *testing.T) {
	testCases := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"uint8 across zero", uint64(occupancy[uint8](2, 250)), 8},
		{"uint8 equal", uint64(occupancy[uint8](77, 77)), 0},
		{"uint64 across max", occupancy[uint64](3, ^uint64(0)-4), 8},
		{"uint64 plain", occupancy[uint64](1030, 1024), 6},
	}

	for _, tc := range testCases {
		if tc.got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

// TestRingBuffer_CursorOverflow starts both cursors just below 2^64 so the
// unmasked counters overflow while items are in flight.
func TestRingBuffer_CursorOverflow(t *testing.T) {
	r := MustRingBuffer[int](4)
	start := ^uint64(0) - 5
	r.write.Store(start)
	r.read.Store(start)

	next, want := 0, 0
	for ; next < 2; next++ {
		r.Push(next)
	}
	for ; next < 40; next++ {
		if !r.TryPush(next) {
			t.Fatalf("push %d failed", next)
		}
		if r.Len() != r.Cap() {
			t.Fatalf("expected Len() = %d, got %d", r.Cap(), r.Len())
		}
		if r.TryPush(-1) {
			t.Fatal("TryPush() succeeded on full ring")
		}
		if got := r.Pop(); got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
		want++
	}
	if r.write.Load() >= start {
		t.Fatal("write cursor did not overflow")
	}
}

func TestRing_PopClearsSlot(t *testing.T) {
	v := new(int)

	r := MustRingBuffer[*int](4)
	r.Push(v)
	_ = r.Pop()
	for i, p := range r.buf {
		if p != nil {
			t.Fatalf("RingBuffer slot %d still references a popped value", i)
		}
	}

	r8 := NewRing256[*int]()
	r8.Push(v)
	_, _ = r8.TryPop()
	if r8.slots[0] != nil {
		t.Fatal("Ring256 slot 0 still references a popped value")
	}
}

func TestWithSpins(t *testing.T) {
	if c := newConfig(nil); c.spins != DefaultSpins {
		t.Errorf("expected default spins %d, got %d", DefaultSpins, c.spins)
	}
	if c := newConfig([]Option{WithSpins(3)}); c.spins != 3 {
		t.Errorf("expected spins 3, got %d", c.spins)
	}
	if c := newConfig([]Option{WithSpins(-1)}); c.spins != 0 {
		t.Errorf("expected negative spins to clamp to 0, got %d", c.spins)
	}
}
