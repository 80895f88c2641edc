package issuance

// MaturityDelay is the number of blocks a reward waits before it is final.
const MaturityDelay = 11

// MaturityBuffer delays values by a fixed number of pushes.
//
// Every Push enqueues; once more than delay values are held, the oldest one
// is dequeued and returned as matured. The first value therefore matures on
// push number delay+1 and from then on exactly one value matures per push,
// leaving delay values buffered.
//
// It is backed by a fixed ring of delay+1 slots and never grows.
type MaturityBuffer[T any] struct {
	delay int
	ring  []T
	head  int
	size  int
}

// NewMaturityBuffer creates an empty buffer. delay must be positive.
func NewMaturityBuffer[T any](delay int) *MaturityBuffer[T] {
	if delay <= 0 {
		panic("maturity delay must be positive")
	}
	return &MaturityBuffer[T]{
		delay: delay,
		ring:  make([]T, delay+1),
	}
}

// Push enqueues v and returns the value that matured as a result, if any.
func (b *MaturityBuffer[T]) Push(v T) (matured T, ok bool) {
	b.ring[(b.head+b.size)%len(b.ring)] = v
	b.size++
	if b.size <= b.delay {
		return matured, false
	}

	matured = b.ring[b.head]
	var zero T
	b.ring[b.head] = zero
	b.head = (b.head + 1) % len(b.ring)
	b.size--
	return matured, true
}

// Len returns the number of buffered, not yet matured values.
func (b *MaturityBuffer[T]) Len() int {
	return b.size
}
