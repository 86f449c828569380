package glm

import "fmt"

// Mat3 is a 3x3 matrix stored in column-major order, matching OpenGL's
// interpretation. Field Mcr is the element in column c, row r:
//
//	| M00  M10  M20 |
//	| M01  M11  M21 |
//	| M02  M12  M22 |
//
// Vectors are columns and are transformed as M · v. Any nine values form a
// valid Mat3; a zero determinant is allowed and simply makes Invert a no-op.
//
// Methods with pointer receivers mutate the receiver and return it so calls
// can be chained. A Mat3 is not safe for concurrent mutation.
type Mat3[T Float] struct {
	M00, M01, M02 T
	M10, M11, M12 T
	M20, M21, M22 T
}

// Ident3 returns the 3x3 identity matrix.
func Ident3[T Float]() Mat3[T] {
	return Mat3[T]{
		M00: 1,
		M11: 1,
		M22: 1,
	}
}

// Diag3 returns a matrix with d on the diagonal and zero elsewhere.
func Diag3[T Float](d T) Mat3[T] {
	return Mat3[T]{
		M00: d,
		M11: d,
		M22: d,
	}
}

// Identity sets m to the identity matrix.
func (m *Mat3[T]) Identity() *Mat3[T] {
	*m = Ident3[T]()
	return m
}

// Zero sets every element of m to 0.
func (m *Mat3[T]) Zero() *Mat3[T] {
	*m = Mat3[T]{}
	return m
}

// Set copies src into m.
func (m *Mat3[T]) Set(src *Mat3[T]) *Mat3[T] {
	*m = *src
	return m
}

// SetValues sets the nine elements in column-major order.
func (m *Mat3[T]) SetValues(m00, m01, m02, m10, m11, m12, m20, m21, m22 T) *Mat3[T] {
	m.M00, m.M01, m.M02 = m00, m01, m02
	m.M10, m.M11, m.M12 = m10, m11, m12
	m.M20, m.M21, m.M22 = m20, m21, m22
	return m
}

// SetSlice sets m from the first nine values of s, read in column-major
// order:
//
//	| s[0]  s[3]  s[6] |
//	| s[1]  s[4]  s[7] |
//	| s[2]  s[5]  s[8] |
//
// Values past the ninth are ignored. SetSlice panics if len(s) < 9.
func (m *Mat3[T]) SetSlice(s []T) *Mat3[T] {
	_ = s[8]
	return m.SetValues(s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7], s[8])
}

// Array returns the elements of m in column-major order.
func (m *Mat3[T]) Array() [9]T {
	return [9]T{
		m.M00, m.M01, m.M02,
		m.M10, m.M11, m.M12,
		m.M20, m.M21, m.M22,
	}
}

// Col returns column i (0, 1 or 2). It panics for any other index.
func (m *Mat3[T]) Col(i int) Vec3[T] {
	switch i {
	case 0:
		return Vec3[T]{X: m.M00, Y: m.M01, Z: m.M02}
	case 1:
		return Vec3[T]{X: m.M10, Y: m.M11, Z: m.M12}
	case 2:
		return Vec3[T]{X: m.M20, Y: m.M21, Z: m.M22}
	}
	panic(fmt.Sprintf("glm: Mat3 column index %d out of range", i))
}

// SetMat4 sets m to the upper-left 3x3 submatrix of src.
func (m *Mat3[T]) SetMat4(src *Mat4[T]) *Mat3[T] {
	return m.SetValues(
		src.M00, src.M01, src.M02,
		src.M10, src.M11, src.M12,
		src.M20, src.M21, src.M22,
	)
}

// SetNormal sets m to the normal matrix of src: the transpose of the
// inverse of its upper-left 3x3. When that 3x3 is singular the inversion
// step is a no-op, so m ends up holding its plain transpose.
func (m *Mat3[T]) SetNormal(src *Mat4[T]) *Mat3[T] {
	return m.SetMat4(src).Invert().Transpose()
}

// Determinant returns the determinant of m.
func (m *Mat3[T]) Determinant() T {
	return (m.M00*m.M11*m.M22 + m.M10*m.M21*m.M02 + m.M20*m.M01*m.M12) -
		(m.M20*m.M11*m.M02 + m.M00*m.M21*m.M12 + m.M10*m.M01*m.M22)
}

// Invertible reports whether m has a non-zero determinant. The Invert
// family leaves its target untouched exactly when this returns false.
func (m *Mat3[T]) Invertible() bool {
	return m.Determinant() != 0
}

// Invert inverts m in place. If m is singular it is left unchanged; use
// Invertible to tell the two outcomes apart.
func (m *Mat3[T]) Invert() *Mat3[T] {
	m.InvertInto(m)
	return m
}

// InvertInto stores the inverse of m in dest and returns dest. dest may be
// m itself. If m is singular, dest is left unchanged.
func (m *Mat3[T]) InvertInto(dest *Mat3[T]) *Mat3[T] {
	det := m.Determinant()
	if det == 0 {
		return dest
	}
	s := 1 / det
	return dest.SetValues(
		(m.M11*m.M22-m.M21*m.M12)*s,
		-(m.M01*m.M22-m.M21*m.M02)*s,
		(m.M01*m.M12-m.M11*m.M02)*s,
		-(m.M10*m.M22-m.M20*m.M12)*s,
		(m.M00*m.M22-m.M20*m.M02)*s,
		-(m.M00*m.M12-m.M10*m.M02)*s,
		(m.M10*m.M21-m.M20*m.M11)*s,
		-(m.M00*m.M21-m.M20*m.M01)*s,
		(m.M00*m.M11-m.M10*m.M01)*s,
	)
}

// InvertIntoUnchecked stores the inverse of m in dest, writing each element
// as soon as it is computed. dest must not be m: when it is, later elements
// are computed from already-overwritten ones and the result is wrong.
// If m is singular, dest is left unchanged.
func (m *Mat3[T]) InvertIntoUnchecked(dest *Mat3[T]) *Mat3[T] {
	det := m.Determinant()
	if det == 0 {
		return dest
	}
	s := 1 / det
	dest.M00 = (m.M11*m.M22 - m.M21*m.M12) * s
	dest.M01 = -(m.M01*m.M22 - m.M21*m.M02) * s
	dest.M02 = (m.M01*m.M12 - m.M11*m.M02) * s
	dest.M10 = -(m.M10*m.M22 - m.M20*m.M12) * s
	dest.M11 = (m.M00*m.M22 - m.M20*m.M02) * s
	dest.M12 = -(m.M00*m.M12 - m.M10*m.M02) * s
	dest.M20 = (m.M10*m.M21 - m.M20*m.M11) * s
	dest.M21 = -(m.M00*m.M21 - m.M20*m.M01) * s
	dest.M22 = (m.M00*m.M11 - m.M10*m.M01) * s
	return dest
}

// InvertTo writes the inverse of m to sink in column-major order. If m is
// singular nothing is written.
func (m *Mat3[T]) InvertTo(sink Sink[T]) *Mat3[T] {
	if !m.Invertible() {
		return m
	}
	var inv Mat3[T]
	m.InvertIntoUnchecked(&inv).Get(sink)
	return m
}

// Transpose transposes m in place.
func (m *Mat3[T]) Transpose() *Mat3[T] {
	m.M01, m.M10 = m.M10, m.M01
	m.M02, m.M20 = m.M20, m.M02
	m.M12, m.M21 = m.M21, m.M12
	return m
}

// TransposeInto stores the transpose of m in dest and returns dest.
// dest may be m itself.
func (m *Mat3[T]) TransposeInto(dest *Mat3[T]) *Mat3[T] {
	return dest.SetValues(
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
		m.M02, m.M12, m.M22,
	)
}

// TransposeIntoUnchecked stores the transpose of m in dest element by
// element. dest must not be m.
func (m *Mat3[T]) TransposeIntoUnchecked(dest *Mat3[T]) *Mat3[T] {
	dest.M00 = m.M00
	dest.M01 = m.M10
	dest.M02 = m.M20
	dest.M10 = m.M01
	dest.M11 = m.M11
	dest.M12 = m.M21
	dest.M20 = m.M02
	dest.M21 = m.M12
	dest.M22 = m.M22
	return dest
}

// TransposeTo writes the transpose of m to sink in column-major order,
// which is the row-major order of m.
func (m *Mat3[T]) TransposeTo(sink Sink[T]) *Mat3[T] {
	sink.Put(m.M00)
	sink.Put(m.M10)
	sink.Put(m.M20)
	sink.Put(m.M01)
	sink.Put(m.M11)
	sink.Put(m.M21)
	sink.Put(m.M02)
	sink.Put(m.M12)
	sink.Put(m.M22)
	return m
}

// Mul sets m to m · right. right may be m itself.
func (m *Mat3[T]) Mul(right *Mat3[T]) *Mat3[T] {
	m.MulInto(right, m)
	return m
}

// MulInto stores m · right in dest and returns dest. Column k of the result
// is m applied to column k of right. dest may be m, right, or both: the
// product is staged in locals before any element of dest is written.
func (m *Mat3[T]) MulInto(right, dest *Mat3[T]) *Mat3[T] {
	return dest.SetValues(
		m.M00*right.M00+m.M10*right.M01+m.M20*right.M02,
		m.M01*right.M00+m.M11*right.M01+m.M21*right.M02,
		m.M02*right.M00+m.M12*right.M01+m.M22*right.M02,
		m.M00*right.M10+m.M10*right.M11+m.M20*right.M12,
		m.M01*right.M10+m.M11*right.M11+m.M21*right.M12,
		m.M02*right.M10+m.M12*right.M11+m.M22*right.M12,
		m.M00*right.M20+m.M10*right.M21+m.M20*right.M22,
		m.M01*right.M20+m.M11*right.M21+m.M21*right.M22,
		m.M02*right.M20+m.M12*right.M21+m.M22*right.M22,
	)
}

// MulIntoUnchecked stores m · right in dest, writing each element as soon
// as it is computed. dest must be distinct from both m and right; if it
// aliases either, the result is numerically wrong (no fault is raised).
func (m *Mat3[T]) MulIntoUnchecked(right, dest *Mat3[T]) *Mat3[T] {
	dest.M00 = m.M00*right.M00 + m.M10*right.M01 + m.M20*right.M02
	dest.M01 = m.M01*right.M00 + m.M11*right.M01 + m.M21*right.M02
	dest.M02 = m.M02*right.M00 + m.M12*right.M01 + m.M22*right.M02
	dest.M10 = m.M00*right.M10 + m.M10*right.M11 + m.M20*right.M12
	dest.M11 = m.M01*right.M10 + m.M11*right.M11 + m.M21*right.M12
	dest.M12 = m.M02*right.M10 + m.M12*right.M11 + m.M22*right.M12
	dest.M20 = m.M00*right.M20 + m.M10*right.M21 + m.M20*right.M22
	dest.M21 = m.M01*right.M20 + m.M11*right.M21 + m.M21*right.M22
	dest.M22 = m.M02*right.M20 + m.M12*right.M21 + m.M22*right.M22
	return dest
}

// MulScalar multiplies every element of m by s.
func (m *Mat3[T]) MulScalar(s T) *Mat3[T] {
	m.MulScalarInto(s, m)
	return m
}

// MulScalarInto stores m scaled by s in dest and returns dest.
// dest may be m itself.
func (m *Mat3[T]) MulScalarInto(s T, dest *Mat3[T]) *Mat3[T] {
	return dest.SetValues(
		m.M00*s, m.M01*s, m.M02*s,
		m.M10*s, m.M11*s, m.M12*s,
		m.M20*s, m.M21*s, m.M22*s,
	)
}

// MulScalarTo writes m scaled by s to sink in column-major order.
func (m *Mat3[T]) MulScalarTo(s T, sink Sink[T]) *Mat3[T] {
	sink.Put(m.M00 * s)
	sink.Put(m.M01 * s)
	sink.Put(m.M02 * s)
	sink.Put(m.M10 * s)
	sink.Put(m.M11 * s)
	sink.Put(m.M12 * s)
	sink.Put(m.M20 * s)
	sink.Put(m.M21 * s)
	sink.Put(m.M22 * s)
	return m
}

// Translation sets m to a 2D homogeneous translation by (x, y), discarding
// its previous contents. Multiply it onto another matrix to translate that.
func (m *Mat3[T]) Translation(x, y T) *Mat3[T] {
	*m = Ident3[T]()
	m.M20 = x
	m.M21 = y
	return m
}

// TranslationVec is Translation(v.X, v.Y).
func (m *Mat3[T]) TranslationVec(v Vec2[T]) *Mat3[T] {
	return m.Translation(v.X, v.Y)
}

// Scaling sets m to a scale matrix, discarding its previous contents.
func (m *Mat3[T]) Scaling(x, y, z T) *Mat3[T] {
	*m = Mat3[T]{M00: x, M11: y, M22: z}
	return m
}

// ScalingVec is Scaling(v.X, v.Y, v.Z).
func (m *Mat3[T]) ScalingVec(v Vec3[T]) *Mat3[T] {
	return m.Scaling(v.X, v.Y, v.Z)
}

// Rotation sets m to a rotation of angle radians about the axis (x, y, z),
// discarding its previous contents. The axis must be unit length; it is not
// normalized, and a non-unit axis yields a non-orthogonal matrix.
//
// See https://en.wikipedia.org/wiki/Rotation_matrix#Rotation_matrix_from_axis_and_angle
func (m *Mat3[T]) Rotation(angle, x, y, z T) *Mat3[T] {
	sin, cos := sincos(angle)
	c := 1 - cos
	m.M00 = cos + x*x*c
	m.M10 = x*y*c - z*sin
	m.M20 = x*z*c + y*sin
	m.M01 = y*x*c + z*sin
	m.M11 = cos + y*y*c
	m.M21 = y*z*c - x*sin
	m.M02 = z*x*c - y*sin
	m.M12 = z*y*c + x*sin
	m.M22 = cos + z*z*c
	return m
}

// RotationAxis is Rotation(angle, axis.X, axis.Y, axis.Z).
func (m *Mat3[T]) RotationAxis(angle T, axis Vec3[T]) *Mat3[T] {
	return m.Rotation(angle, axis.X, axis.Y, axis.Z)
}

// RotationQuat sets m to the rotation represented by the unit quaternion q.
func (m *Mat3[T]) RotationQuat(q Quat[T]) *Mat3[T] {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	xw, yw, zw := q.X*q.W, q.Y*q.W, q.Z*q.W
	return m.SetValues(
		1-2*(yy+zz), 2*(xy+zw), 2*(xz-yw),
		2*(xy-zw), 1-2*(xx+zz), 2*(yz+xw),
		2*(xz+yw), 2*(yz-xw), 1-2*(xx+yy),
	)
}

// Transform replaces v with m · v.
func (m *Mat3[T]) Transform(v *Vec3[T]) *Mat3[T] {
	x, y, z := v.X, v.Y, v.Z
	v.X = m.M00*x + m.M10*y + m.M20*z
	v.Y = m.M01*x + m.M11*y + m.M21*z
	v.Z = m.M02*x + m.M12*y + m.M22*z
	return m
}

// Get writes the nine elements of m to sink in column-major order, one Put
// per element. The sink's own cursor decides where they land.
func (m *Mat3[T]) Get(sink Sink[T]) *Mat3[T] {
	sink.Put(m.M00)
	sink.Put(m.M01)
	sink.Put(m.M02)
	sink.Put(m.M10)
	sink.Put(m.M11)
	sink.Put(m.M12)
	sink.Put(m.M20)
	sink.Put(m.M21)
	sink.Put(m.M22)
	return m
}

// ApproxEqual reports whether every element of m is within epsilon of the
// matching element of o.
func (m *Mat3[T]) ApproxEqual(o *Mat3[T], epsilon T) bool {
	a, b := m.Array(), o.Array()
	for i := range a {
		if abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

// String formats m in row layout, the way it is written on paper.
func (m Mat3[T]) String() string {
	return fmt.Sprintf("Mat3{%g, %g, %g,\n     %g, %g, %g,\n     %g, %g, %g}",
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
		m.M02, m.M12, m.M22)
}

// ConvertMat3 copies src into dest, widening or narrowing each element.
func ConvertMat3[D, S Float](src *Mat3[S], dest *Mat3[D]) *Mat3[D] {
	return dest.SetValues(
		D(src.M00), D(src.M01), D(src.M02),
		D(src.M10), D(src.M11), D(src.M12),
		D(src.M20), D(src.M21), D(src.M22),
	)
}
