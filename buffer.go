package glm

// Sink receives scalars one at a time, advancing its own write position on
// every Put. Matrices export through a Sink in column-major order and never
// rewind or resize it.
type Sink[T Float] interface {
	Put(v T)
}

// Buffer is a fixed-capacity Sink over a client-owned slice.
//
// A Put with no space remaining drops the value and records
// ErrBufferOverflow; later Puts are dropped as well. The error is sticky
// until Rewind, so a batch of exports can be checked once at the end:
//
//	buf := glm.NewBuffer[float32](32)
//	model.Get(buf)
//	view.Get(buf)
//	if err := buf.Err(); err != nil {
//	    return err
//	}
type Buffer[T Float] struct {
	data []T
	pos  int
	err  error
}

// NewBuffer allocates a Buffer with room for n values.
func NewBuffer[T Float](n int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, n)}
}

// WrapBuffer returns a Buffer writing into data from index 0.
// The Buffer does not copy data; writes are visible through it.
func WrapBuffer[T Float](data []T) *Buffer[T] {
	return &Buffer[T]{data: data}
}

// Put writes v at the current position and advances it.
func (b *Buffer[T]) Put(v T) {
	if b.err != nil {
		return
	}
	if b.pos >= len(b.data) {
		b.err = ErrBufferOverflow
		return
	}
	b.data[b.pos] = v
	b.pos++
}

// Position returns the index the next Put writes to.
func (b *Buffer[T]) Position() int { return b.pos }

// Remaining returns how many more values fit.
func (b *Buffer[T]) Remaining() int { return len(b.data) - b.pos }

// Rewind resets the position to 0 and clears any recorded error.
// Previously written values are left in place.
func (b *Buffer[T]) Rewind() {
	b.pos = 0
	b.err = nil
}

// Written returns the values written since the last Rewind.
func (b *Buffer[T]) Written() []T { return b.data[:b.pos] }

// Err returns ErrBufferOverflow if any Put did not fit.
func (b *Buffer[T]) Err() error { return b.err }
