package glm

// Projection and view constructors. All of them overwrite the receiver and
// follow the OpenGL conventions: right-handed eye space looking down -Z,
// clip-space depth in [-1, 1].

// Frustum sets m to a perspective projection of the view frustum bounded
// by the left, right, bottom and top planes at distance near, and by far.
func (m *Mat4[T]) Frustum(left, right, bottom, top, near, far T) *Mat4[T] {
	*m = Mat4[T]{
		M00: 2 * near / (right - left),
		M11: 2 * near / (top - bottom),
		M20: (right + left) / (right - left),
		M21: (top + bottom) / (top - bottom),
		M22: -(far + near) / (far - near),
		M23: -1,
		M32: -2 * far * near / (far - near),
	}
	return m
}

// Perspective sets m to a symmetric perspective projection with vertical
// field of view fovy (radians) and aspect ratio width/height.
func (m *Mat4[T]) Perspective(fovy, aspect, near, far T) *Mat4[T] {
	h := tan(fovy / 2)
	*m = Mat4[T]{
		M00: 1 / (h * aspect),
		M11: 1 / h,
		M22: (far + near) / (near - far),
		M23: -1,
		M32: 2 * far * near / (near - far),
	}
	return m
}

// Ortho sets m to an orthographic projection of the given box.
func (m *Mat4[T]) Ortho(left, right, bottom, top, near, far T) *Mat4[T] {
	*m = Mat4[T]{
		M00: 2 / (right - left),
		M11: 2 / (top - bottom),
		M22: -2 / (far - near),
		M30: -(right + left) / (right - left),
		M31: -(top + bottom) / (top - bottom),
		M32: -(far + near) / (far - near),
		M33: 1,
	}
	return m
}

// Ortho2D is Ortho with near = -1 and far = 1.
func (m *Mat4[T]) Ortho2D(left, right, bottom, top T) *Mat4[T] {
	return m.Ortho(left, right, bottom, top, -1, 1)
}

// LookAt sets m to a view matrix placing the eye at eye, looking at center,
// with up giving the approximate up direction. up must not be parallel to
// center - eye.
func (m *Mat4[T]) LookAt(eye, center, up Vec3[T]) *Mat4[T] {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	*m = Mat4[T]{
		M00: s.X, M01: u.X, M02: -f.X,
		M10: s.Y, M11: u.Y, M12: -f.Y,
		M20: s.Z, M21: u.Z, M22: -f.Z,
		M30: -s.Dot(eye),
		M31: -u.Dot(eye),
		M32: f.Dot(eye),
		M33: 1,
	}
	return m
}
