package queue

// cursor is the unsigned width a ring counts in. All arithmetic between two
// cursors happens in that width, so subtraction wraps instead of overflowing.
type cursor interface {
	~uint8 | ~uint64
}

// occupancy is the number of published, unconsumed slots.
func occupancy[C cursor](w, r C) C {
	return w - r
}

// isFull reports whether the producer must wait. For uint8 cursors with
// usable == 255 this is the same test as w+1 == r.
func isFull[C cursor](w, r, usable C) bool {
	return w-r == usable
}

func isEmpty[C cursor](w, r C) bool {
	return w == r
}
