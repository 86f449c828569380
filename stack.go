package glm

import "fmt"

// MatrixStack replays the legacy push/pop transform stack on top of Mat4.
//
// The stack is a fixed number of slots plus a cursor (the depth). Slot 0
// starts as the identity. Push copies the current slot into the next one
// and moves the cursor there; Pop moves the cursor back without clearing
// the slot it leaves. Translate, Scale, Rotate and Mul compose onto the
// current slot (current = current · T), unlike the Mat4 constructors of the
// same names, which overwrite.
//
// The slots are allocated once by NewMatrixStack; no other method
// allocates. A MatrixStack must not be used from several goroutines at once.
type MatrixStack[T Float] struct {
	mats  []Mat4[T]
	depth int
}

// NewMatrixStack returns a stack with capacity slots, depth 0 and an
// identity current matrix. capacity must be at least 1.
func NewMatrixStack[T Float](capacity int) (*MatrixStack[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	s := &MatrixStack[T]{mats: make([]Mat4[T], capacity)}
	s.mats[0].Identity()
	return s, nil
}

// Depth returns the index of the current slot.
func (s *MatrixStack[T]) Depth() int { return s.depth }

// Capacity returns the number of slots.
func (s *MatrixStack[T]) Capacity() int { return len(s.mats) }

// Reset moves the cursor to slot 0 and sets it to the identity.
func (s *MatrixStack[T]) Reset() {
	s.depth = 0
	s.mats[0].Identity()
}

// Push duplicates the current matrix into the next slot and makes that
// slot current. It fails with ErrStackOverflow, leaving the stack
// unchanged, when the current slot is the last one.
func (s *MatrixStack[T]) Push() error {
	if s.depth == len(s.mats)-1 {
		Logger().Debug("matrix stack overflow", "depth", s.depth, "capacity", len(s.mats))
		return fmt.Errorf("%w: depth %d, capacity %d", ErrStackOverflow, s.depth, len(s.mats))
	}
	s.mats[s.depth+1] = s.mats[s.depth]
	s.depth++
	return nil
}

// Pop makes the previous slot current. It fails with ErrStackUnderflow
// at depth 0.
func (s *MatrixStack[T]) Pop() error {
	if s.depth == 0 {
		Logger().Debug("matrix stack underflow", "capacity", len(s.mats))
		return fmt.Errorf("%w: capacity %d", ErrStackUnderflow, len(s.mats))
	}
	s.depth--
	return nil
}

func (s *MatrixStack[T]) current() *Mat4[T] {
	return &s.mats[s.depth]
}

// LoadIdentity replaces the current matrix with the identity.
func (s *MatrixStack[T]) LoadIdentity() {
	s.current().Identity()
}

// Load replaces the current matrix with a copy of m.
func (s *MatrixStack[T]) Load(m *Mat4[T]) {
	s.current().Set(m)
}

// Mul sets the current matrix to current · m.
func (s *MatrixStack[T]) Mul(m *Mat4[T]) {
	cur := s.current()
	cur.MulInto(m, cur)
}

// Translate composes a translation by (x, y, z) onto the current matrix.
func (s *MatrixStack[T]) Translate(x, y, z T) {
	var t Mat4[T]
	s.Mul(t.Translation(x, y, z))
}

// Scale composes a scale onto the current matrix.
func (s *MatrixStack[T]) Scale(x, y, z T) {
	var t Mat4[T]
	s.Mul(t.Scaling(x, y, z))
}

// Rotate composes a rotation of angle radians about the unit axis
// (x, y, z) onto the current matrix.
func (s *MatrixStack[T]) Rotate(angle, x, y, z T) {
	var t Mat4[T]
	s.Mul(t.Rotation(angle, x, y, z))
}

// RotateQuat composes the rotation of the unit quaternion q onto the
// current matrix.
func (s *MatrixStack[T]) RotateQuat(q Quat[T]) {
	var t Mat4[T]
	s.Mul(t.RotationQuat(q))
}

// Perspective composes a perspective projection onto the current matrix.
func (s *MatrixStack[T]) Perspective(fovy, aspect, near, far T) {
	var t Mat4[T]
	s.Mul(t.Perspective(fovy, aspect, near, far))
}

// Ortho composes an orthographic projection onto the current matrix.
func (s *MatrixStack[T]) Ortho(left, right, bottom, top, near, far T) {
	var t Mat4[T]
	s.Mul(t.Ortho(left, right, bottom, top, near, far))
}

// LookAt composes a view transform onto the current matrix.
func (s *MatrixStack[T]) LookAt(eye, center, up Vec3[T]) {
	var t Mat4[T]
	s.Mul(t.LookAt(eye, center, up))
}

// Get copies the current matrix into dest and returns dest.
func (s *MatrixStack[T]) Get(dest *Mat4[T]) *Mat4[T] {
	return dest.Set(s.current())
}

// GetTo writes the current matrix to sink in column-major order.
func (s *MatrixStack[T]) GetTo(sink Sink[T]) {
	s.current().Get(sink)
}

// Current returns a copy of the current matrix.
func (s *MatrixStack[T]) Current() Mat4[T] {
	return *s.current()
}
