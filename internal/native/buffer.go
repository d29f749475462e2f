package native

import "fmt"

// OutBuffer is an output sequence handed to the native side as a raw
// pointer/length pair. Capacity is fixed at allocation; the logical length
// stays zero until Commit accepts the count the native call reported.
type OutBuffer struct {
	data      []float64
	committed bool
}

// NewOutBuffer allocates a buffer able to hold capacity values.
func NewOutBuffer(capacity int) *OutBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &OutBuffer{data: make([]float64, 0, capacity)}
}

// Cap returns the buffer capacity.
func (b *OutBuffer) Cap() int { return cap(b.data) }

// Len returns the committed length.
func (b *OutBuffer) Len() int { return len(b.data) }

// Raw exposes the full capacity for the native routine to write into.
// Valid only until Commit.
func (b *OutBuffer) Raw() []float64 {
	return b.data[:cap(b.data)]
}

// Commit sets the logical length to n. Counts outside [0, Cap] are rejected
// and leave the buffer empty.
func (b *OutBuffer) Commit(n int) error {
	if b.committed {
		return fmt.Errorf("output buffer already committed")
	}
	if n < 0 || n > cap(b.data) {
		return fmt.Errorf("reported count %d exceeds buffer capacity %d", n, cap(b.data))
	}
	b.data = b.data[:n]
	b.committed = true
	return nil
}

// Values returns the committed values.
func (b *OutBuffer) Values() []float64 {
	return b.data
}
