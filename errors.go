package glm

import "errors"

// Matrix stack errors. Push and Pop wrap these with the stack position, so
// callers should match them with errors.Is.
var (
	// ErrStackOverflow is returned by Push when the cursor already designates
	// the last slot.
	ErrStackOverflow = errors.New("glm: matrix stack overflow")

	// ErrStackUnderflow is returned by Pop when the cursor is at slot 0.
	ErrStackUnderflow = errors.New("glm: matrix stack underflow")

	// ErrInvalidCapacity is returned by NewMatrixStack for capacities below 1.
	ErrInvalidCapacity = errors.New("glm: matrix stack capacity must be > 0")
)

// ErrBufferOverflow is recorded by Buffer when Put is called with no
// space remaining.
var ErrBufferOverflow = errors.New("glm: buffer overflow")
