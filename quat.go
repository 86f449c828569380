package glm

// Quat is a rotation quaternion x·i + y·j + z·k + w. Only unit quaternions
// represent rotations; RotationQuat on Mat3 and Mat4 assumes unit length.
type Quat[T Float] struct {
	X, Y, Z, W T
}

// QuatIdent returns the identity rotation.
func QuatIdent[T Float]() Quat[T] {
	return Quat[T]{W: 1}
}

// QuatAxisAngle returns the rotation of angle radians about the unit axis.
func QuatAxisAngle[T Float](angle T, axis Vec3[T]) Quat[T] {
	s, c := sincos(angle / 2)
	return Quat[T]{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// Mul returns the Hamilton product q · r, the rotation r followed by q.
func (q Quat[T]) Mul(r Quat[T]) Quat[T] {
	return Quat[T]{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Length returns the norm of q.
func (q Quat[T]) Length() T {
	return sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns q scaled to unit length, or the identity rotation if q
// is zero.
func (q Quat[T]) Normalize() Quat[T] {
	l := q.Length()
	if l == 0 {
		return QuatIdent[T]()
	}
	return Quat[T]{X: q.X / l, Y: q.Y / l, Z: q.Z / l, W: q.W / l}
}

// Rotate returns v rotated by the unit quaternion q.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	u := Vec3[T]{X: q.X, Y: q.Y, Z: q.Z}
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(u.Cross(t))
}
