package queue

import "errors"

// ErrCapacity is returned when a ring is constructed with a slot count that
// is not a power of two, or is smaller than 2.
var ErrCapacity = errors.New("queue: slot count must be a power of two >= 2")

// Condition is the reason a non-blocking operation could not proceed.
//
// The set is closed: a queue is either full or empty, nothing else can go
// wrong once it has been constructed.
type Condition uint8

const (
	// Full means there was no vacant slot for a push.
	Full Condition = iota + 1
	// Empty means there was no published slot for a pop.
	Empty
)

var conditionText = [...]string{
	Full:  "queue: full",
	Empty: "queue: empty",
}

// String returns the static description of c.
func (c Condition) String() string {
	if c == 0 || int(c) >= len(conditionText) {
		return "unknown"
	}
	return conditionText[c]
}

// Error lets a Condition be returned as an error by the poll helpers.
func (c Condition) Error() string {
	return c.String()
}
