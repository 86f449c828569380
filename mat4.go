package glm

import "fmt"

// Mat4 is a 4x4 matrix stored in column-major order. Field Mcr is the
// element in column c, row r:
//
//	| M00  M10  M20  M30 |
//	| M01  M11  M21  M31 |
//	| M02  M12  M22  M32 |
//	| M03  M13  M23  M33 |
//
// The translation of an affine transform lives in M30, M31, M32. As with
// Mat3, any sixteen values are valid and methods mutate the receiver.
type Mat4[T Float] struct {
	M00, M01, M02, M03 T
	M10, M11, M12, M13 T
	M20, M21, M22, M23 T
	M30, M31, M32, M33 T
}

// Ident4 returns the 4x4 identity matrix.
func Ident4[T Float]() Mat4[T] {
	return Mat4[T]{
		M00: 1,
		M11: 1,
		M22: 1,
		M33: 1,
	}
}

// Diag4 returns a matrix with d on the diagonal and zero elsewhere.
func Diag4[T Float](d T) Mat4[T] {
	return Mat4[T]{
		M00: d,
		M11: d,
		M22: d,
		M33: d,
	}
}

// Identity sets m to the identity matrix.
func (m *Mat4[T]) Identity() *Mat4[T] {
	*m = Ident4[T]()
	return m
}

// Zero sets every element of m to 0.
func (m *Mat4[T]) Zero() *Mat4[T] {
	*m = Mat4[T]{}
	return m
}

// Set copies src into m.
func (m *Mat4[T]) Set(src *Mat4[T]) *Mat4[T] {
	*m = *src
	return m
}

// SetValues sets the sixteen elements in column-major order.
func (m *Mat4[T]) SetValues(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 T,
) *Mat4[T] {
	m.M00, m.M01, m.M02, m.M03 = m00, m01, m02, m03
	m.M10, m.M11, m.M12, m.M13 = m10, m11, m12, m13
	m.M20, m.M21, m.M22, m.M23 = m20, m21, m22, m23
	m.M30, m.M31, m.M32, m.M33 = m30, m31, m32, m33
	return m
}

// SetSlice sets m from the first sixteen values of s in column-major order.
// Values past the sixteenth are ignored. SetSlice panics if len(s) < 16.
func (m *Mat4[T]) SetSlice(s []T) *Mat4[T] {
	_ = s[15]
	return m.SetValues(
		s[0], s[1], s[2], s[3],
		s[4], s[5], s[6], s[7],
		s[8], s[9], s[10], s[11],
		s[12], s[13], s[14], s[15],
	)
}

// Array returns the elements of m in column-major order.
func (m *Mat4[T]) Array() [16]T {
	return [16]T{
		m.M00, m.M01, m.M02, m.M03,
		m.M10, m.M11, m.M12, m.M13,
		m.M20, m.M21, m.M22, m.M23,
		m.M30, m.M31, m.M32, m.M33,
	}
}

// Col returns column i (0 to 3). It panics for any other index.
func (m *Mat4[T]) Col(i int) Vec4[T] {
	switch i {
	case 0:
		return Vec4[T]{X: m.M00, Y: m.M01, Z: m.M02, W: m.M03}
	case 1:
		return Vec4[T]{X: m.M10, Y: m.M11, Z: m.M12, W: m.M13}
	case 2:
		return Vec4[T]{X: m.M20, Y: m.M21, Z: m.M22, W: m.M23}
	case 3:
		return Vec4[T]{X: m.M30, Y: m.M31, Z: m.M32, W: m.M33}
	}
	panic(fmt.Sprintf("glm: Mat4 column index %d out of range", i))
}

// SetMat3 sets the upper-left 3x3 of m to src and the rest to identity.
func (m *Mat4[T]) SetMat3(src *Mat3[T]) *Mat4[T] {
	return m.SetValues(
		src.M00, src.M01, src.M02, 0,
		src.M10, src.M11, src.M12, 0,
		src.M20, src.M21, src.M22, 0,
		0, 0, 0, 1,
	)
}

// Determinant returns the determinant of m, expanded through the 2x2
// minors of the first two and last two columns.
func (m *Mat4[T]) Determinant() T {
	a := m.M00*m.M11 - m.M01*m.M10
	b := m.M00*m.M12 - m.M02*m.M10
	c := m.M00*m.M13 - m.M03*m.M10
	d := m.M01*m.M12 - m.M02*m.M11
	e := m.M01*m.M13 - m.M03*m.M11
	f := m.M02*m.M13 - m.M03*m.M12
	g := m.M20*m.M31 - m.M21*m.M30
	h := m.M20*m.M32 - m.M22*m.M30
	i := m.M20*m.M33 - m.M23*m.M30
	j := m.M21*m.M32 - m.M22*m.M31
	k := m.M21*m.M33 - m.M23*m.M31
	l := m.M22*m.M33 - m.M23*m.M32
	return a*l - b*k + c*j + d*i - e*h + f*g
}

// Invertible reports whether m has a non-zero determinant.
func (m *Mat4[T]) Invertible() bool {
	return m.Determinant() != 0
}

// Invert inverts m in place. If m is singular it is left unchanged.
func (m *Mat4[T]) Invert() *Mat4[T] {
	m.InvertInto(m)
	return m
}

// InvertInto stores the inverse of m in dest and returns dest. dest may be
// m itself. If m is singular, dest is left unchanged.
func (m *Mat4[T]) InvertInto(dest *Mat4[T]) *Mat4[T] {
	a := m.M00*m.M11 - m.M01*m.M10
	b := m.M00*m.M12 - m.M02*m.M10
	c := m.M00*m.M13 - m.M03*m.M10
	d := m.M01*m.M12 - m.M02*m.M11
	e := m.M01*m.M13 - m.M03*m.M11
	f := m.M02*m.M13 - m.M03*m.M12
	g := m.M20*m.M31 - m.M21*m.M30
	h := m.M20*m.M32 - m.M22*m.M30
	i := m.M20*m.M33 - m.M23*m.M30
	j := m.M21*m.M32 - m.M22*m.M31
	k := m.M21*m.M33 - m.M23*m.M31
	l := m.M22*m.M33 - m.M23*m.M32
	det := a*l - b*k + c*j + d*i - e*h + f*g
	if det == 0 {
		return dest
	}
	s := 1 / det
	return dest.SetValues(
		(m.M11*l-m.M12*k+m.M13*j)*s,
		(-m.M01*l+m.M02*k-m.M03*j)*s,
		(m.M31*f-m.M32*e+m.M33*d)*s,
		(-m.M21*f+m.M22*e-m.M23*d)*s,
		(-m.M10*l+m.M12*i-m.M13*h)*s,
		(m.M00*l-m.M02*i+m.M03*h)*s,
		(-m.M30*f+m.M32*c-m.M33*b)*s,
		(m.M20*f-m.M22*c+m.M23*b)*s,
		(m.M10*k-m.M11*i+m.M13*g)*s,
		(-m.M00*k+m.M01*i-m.M03*g)*s,
		(m.M30*e-m.M31*c+m.M33*a)*s,
		(-m.M20*e+m.M21*c-m.M23*a)*s,
		(-m.M10*j+m.M11*h-m.M12*g)*s,
		(m.M00*j-m.M01*h+m.M02*g)*s,
		(-m.M30*d+m.M31*b-m.M32*a)*s,
		(m.M20*d-m.M21*b+m.M22*a)*s,
	)
}

// InvertIntoUnchecked is InvertInto for a dest distinct from m. The 2x2
// minors are read once up front, but the cofactors still read m while dest
// is being written, so an aliased dest produces wrong values.
func (m *Mat4[T]) InvertIntoUnchecked(dest *Mat4[T]) *Mat4[T] {
	a := m.M00*m.M11 - m.M01*m.M10
	b := m.M00*m.M12 - m.M02*m.M10
	c := m.M00*m.M13 - m.M03*m.M10
	d := m.M01*m.M12 - m.M02*m.M11
	e := m.M01*m.M13 - m.M03*m.M11
	f := m.M02*m.M13 - m.M03*m.M12
	g := m.M20*m.M31 - m.M21*m.M30
	h := m.M20*m.M32 - m.M22*m.M30
	i := m.M20*m.M33 - m.M23*m.M30
	j := m.M21*m.M32 - m.M22*m.M31
	k := m.M21*m.M33 - m.M23*m.M31
	l := m.M22*m.M33 - m.M23*m.M32
	det := a*l - b*k + c*j + d*i - e*h + f*g
	if det == 0 {
		return dest
	}
	s := 1 / det
	dest.M00 = (m.M11*l - m.M12*k + m.M13*j) * s
	dest.M01 = (-m.M01*l + m.M02*k - m.M03*j) * s
	dest.M02 = (m.M31*f - m.M32*e + m.M33*d) * s
	dest.M03 = (-m.M21*f + m.M22*e - m.M23*d) * s
	dest.M10 = (-m.M10*l + m.M12*i - m.M13*h) * s
	dest.M11 = (m.M00*l - m.M02*i + m.M03*h) * s
	dest.M12 = (-m.M30*f + m.M32*c - m.M33*b) * s
	dest.M13 = (m.M20*f - m.M22*c + m.M23*b) * s
	dest.M20 = (m.M10*k - m.M11*i + m.M13*g) * s
	dest.M21 = (-m.M00*k + m.M01*i - m.M03*g) * s
	dest.M22 = (m.M30*e - m.M31*c + m.M33*a) * s
	dest.M23 = (-m.M20*e + m.M21*c - m.M23*a) * s
	dest.M30 = (-m.M10*j + m.M11*h - m.M12*g) * s
	dest.M31 = (m.M00*j - m.M01*h + m.M02*g) * s
	dest.M32 = (-m.M30*d + m.M31*b - m.M32*a) * s
	dest.M33 = (m.M20*d - m.M21*b + m.M22*a) * s
	return dest
}

// InvertTo writes the inverse of m to sink in column-major order. If m is
// singular nothing is written.
func (m *Mat4[T]) InvertTo(sink Sink[T]) *Mat4[T] {
	if !m.Invertible() {
		return m
	}
	var inv Mat4[T]
	m.InvertIntoUnchecked(&inv).Get(sink)
	return m
}

// Transpose transposes m in place.
func (m *Mat4[T]) Transpose() *Mat4[T] {
	m.M01, m.M10 = m.M10, m.M01
	m.M02, m.M20 = m.M20, m.M02
	m.M03, m.M30 = m.M30, m.M03
	m.M12, m.M21 = m.M21, m.M12
	m.M13, m.M31 = m.M31, m.M13
	m.M23, m.M32 = m.M32, m.M23
	return m
}

// TransposeInto stores the transpose of m in dest and returns dest.
// dest may be m itself.
func (m *Mat4[T]) TransposeInto(dest *Mat4[T]) *Mat4[T] {
	return dest.SetValues(
		m.M00, m.M10, m.M20, m.M30,
		m.M01, m.M11, m.M21, m.M31,
		m.M02, m.M12, m.M22, m.M32,
		m.M03, m.M13, m.M23, m.M33,
	)
}

// TransposeIntoUnchecked stores the transpose of m in dest element by
// element. dest must not be m.
func (m *Mat4[T]) TransposeIntoUnchecked(dest *Mat4[T]) *Mat4[T] {
	dest.M00, dest.M01, dest.M02, dest.M03 = m.M00, m.M10, m.M20, m.M30
	dest.M10, dest.M11, dest.M12, dest.M13 = m.M01, m.M11, m.M21, m.M31
	dest.M20, dest.M21, dest.M22, dest.M23 = m.M02, m.M12, m.M22, m.M32
	dest.M30, dest.M31, dest.M32, dest.M33 = m.M03, m.M13, m.M23, m.M33
	return dest
}

// TransposeTo writes the transpose of m to sink in column-major order.
func (m *Mat4[T]) TransposeTo(sink Sink[T]) *Mat4[T] {
	var t Mat4[T]
	m.TransposeIntoUnchecked(&t).Get(sink)
	return m
}

// Mul sets m to m · right. right may be m itself.
func (m *Mat4[T]) Mul(right *Mat4[T]) *Mat4[T] {
	m.MulInto(right, m)
	return m
}

// MulInto stores m · right in dest and returns dest. dest may be m, right,
// or both.
func (m *Mat4[T]) MulInto(right, dest *Mat4[T]) *Mat4[T] {
	return dest.SetValues(
		m.M00*right.M00+m.M10*right.M01+m.M20*right.M02+m.M30*right.M03,
		m.M01*right.M00+m.M11*right.M01+m.M21*right.M02+m.M31*right.M03,
		m.M02*right.M00+m.M12*right.M01+m.M22*right.M02+m.M32*right.M03,
		m.M03*right.M00+m.M13*right.M01+m.M23*right.M02+m.M33*right.M03,
		m.M00*right.M10+m.M10*right.M11+m.M20*right.M12+m.M30*right.M13,
		m.M01*right.M10+m.M11*right.M11+m.M21*right.M12+m.M31*right.M13,
		m.M02*right.M10+m.M12*right.M11+m.M22*right.M12+m.M32*right.M13,
		m.M03*right.M10+m.M13*right.M11+m.M23*right.M12+m.M33*right.M13,
		m.M00*right.M20+m.M10*right.M21+m.M20*right.M22+m.M30*right.M23,
		m.M01*right.M20+m.M11*right.M21+m.M21*right.M22+m.M31*right.M23,
		m.M02*right.M20+m.M12*right.M21+m.M22*right.M22+m.M32*right.M23,
		m.M03*right.M20+m.M13*right.M21+m.M23*right.M22+m.M33*right.M23,
		m.M00*right.M30+m.M10*right.M31+m.M20*right.M32+m.M30*right.M33,
		m.M01*right.M30+m.M11*right.M31+m.M21*right.M32+m.M31*right.M33,
		m.M02*right.M30+m.M12*right.M31+m.M22*right.M32+m.M32*right.M33,
		m.M03*right.M30+m.M13*right.M31+m.M23*right.M32+m.M33*right.M33,
	)
}

// MulIntoUnchecked stores m · right in dest element by element. dest must
// be distinct from both m and right.
func (m *Mat4[T]) MulIntoUnchecked(right, dest *Mat4[T]) *Mat4[T] {
	dest.M00 = m.M00*right.M00 + m.M10*right.M01 + m.M20*right.M02 + m.M30*right.M03
	dest.M01 = m.M01*right.M00 + m.M11*right.M01 + m.M21*right.M02 + m.M31*right.M03
	dest.M02 = m.M02*right.M00 + m.M12*right.M01 + m.M22*right.M02 + m.M32*right.M03
	dest.M03 = m.M03*right.M00 + m.M13*right.M01 + m.M23*right.M02 + m.M33*right.M03
	dest.M10 = m.M00*right.M10 + m.M10*right.M11 + m.M20*right.M12 + m.M30*right.M13
	dest.M11 = m.M01*right.M10 + m.M11*right.M11 + m.M21*right.M12 + m.M31*right.M13
	dest.M12 = m.M02*right.M10 + m.M12*right.M11 + m.M22*right.M12 + m.M32*right.M13
	dest.M13 = m.M03*right.M10 + m.M13*right.M11 + m.M23*right.M12 + m.M33*right.M13
	dest.M20 = m.M00*right.M20 + m.M10*right.M21 + m.M20*right.M22 + m.M30*right.M23
	dest.M21 = m.M01*right.M20 + m.M11*right.M21 + m.M21*right.M22 + m.M31*right.M23
	dest.M22 = m.M02*right.M20 + m.M12*right.M21 + m.M22*right.M22 + m.M32*right.M23
	dest.M23 = m.M03*right.M20 + m.M13*right.M21 + m.M23*right.M22 + m.M33*right.M23
	dest.M30 = m.M00*right.M30 + m.M10*right.M31 + m.M20*right.M32 + m.M30*right.M33
	dest.M31 = m.M01*right.M30 + m.M11*right.M31 + m.M21*right.M32 + m.M31*right.M33
	dest.M32 = m.M02*right.M30 + m.M12*right.M31 + m.M22*right.M32 + m.M32*right.M33
	dest.M33 = m.M03*right.M30 + m.M13*right.M31 + m.M23*right.M32 + m.M33*right.M33
	return dest
}

// MulScalar multiplies every element of m by s.
func (m *Mat4[T]) MulScalar(s T) *Mat4[T] {
	m.MulScalarInto(s, m)
	return m
}

// MulScalarInto stores m scaled by s in dest and returns dest.
// dest may be m itself.
func (m *Mat4[T]) MulScalarInto(s T, dest *Mat4[T]) *Mat4[T] {
	return dest.SetValues(
		m.M00*s, m.M01*s, m.M02*s, m.M03*s,
		m.M10*s, m.M11*s, m.M12*s, m.M13*s,
		m.M20*s, m.M21*s, m.M22*s, m.M23*s,
		m.M30*s, m.M31*s, m.M32*s, m.M33*s,
	)
}

// MulScalarTo writes m scaled by s to sink in column-major order.
func (m *Mat4[T]) MulScalarTo(s T, sink Sink[T]) *Mat4[T] {
	for _, v := range m.Array() {
		sink.Put(v * s)
	}
	return m
}

// Translation sets m to a translation by (x, y, z), discarding its
// previous contents.
func (m *Mat4[T]) Translation(x, y, z T) *Mat4[T] {
	*m = Ident4[T]()
	m.M30 = x
	m.M31 = y
	m.M32 = z
	return m
}

// TranslationVec is Translation(v.X, v.Y, v.Z).
func (m *Mat4[T]) TranslationVec(v Vec3[T]) *Mat4[T] {
	return m.Translation(v.X, v.Y, v.Z)
}

// Scaling sets m to a scale matrix, discarding its previous contents.
func (m *Mat4[T]) Scaling(x, y, z T) *Mat4[T] {
	*m = Mat4[T]{M00: x, M11: y, M22: z, M33: 1}
	return m
}

// ScalingVec is Scaling(v.X, v.Y, v.Z).
func (m *Mat4[T]) ScalingVec(v Vec3[T]) *Mat4[T] {
	return m.Scaling(v.X, v.Y, v.Z)
}

// Rotation sets m to a rotation of angle radians about the unit axis
// (x, y, z), discarding its previous contents. The axis is not normalized.
func (m *Mat4[T]) Rotation(angle, x, y, z T) *Mat4[T] {
	var r Mat3[T]
	return m.SetMat3(r.Rotation(angle, x, y, z))
}

// RotationAxis is Rotation(angle, axis.X, axis.Y, axis.Z).
func (m *Mat4[T]) RotationAxis(angle T, axis Vec3[T]) *Mat4[T] {
	return m.Rotation(angle, axis.X, axis.Y, axis.Z)
}

// RotationQuat sets m to the rotation represented by the unit quaternion q.
func (m *Mat4[T]) RotationQuat(q Quat[T]) *Mat4[T] {
	var r Mat3[T]
	return m.SetMat3(r.RotationQuat(q))
}

// Transform replaces v with m · v.
func (m *Mat4[T]) Transform(v *Vec4[T]) *Mat4[T] {
	x, y, z, w := v.X, v.Y, v.Z, v.W
	v.X = m.M00*x + m.M10*y + m.M20*z + m.M30*w
	v.Y = m.M01*x + m.M11*y + m.M21*z + m.M31*w
	v.Z = m.M02*x + m.M12*y + m.M22*z + m.M32*w
	v.W = m.M03*x + m.M13*y + m.M23*z + m.M33*w
	return m
}

// TransformPosition replaces v with the xyz of m · (v, 1). No perspective
// divide is performed.
func (m *Mat4[T]) TransformPosition(v *Vec3[T]) *Mat4[T] {
	x, y, z := v.X, v.Y, v.Z
	v.X = m.M00*x + m.M10*y + m.M20*z + m.M30
	v.Y = m.M01*x + m.M11*y + m.M21*z + m.M31
	v.Z = m.M02*x + m.M12*y + m.M22*z + m.M32
	return m
}

// TransformDirection replaces v with the xyz of m · (v, 0), ignoring
// translation.
func (m *Mat4[T]) TransformDirection(v *Vec3[T]) *Mat4[T] {
	x, y, z := v.X, v.Y, v.Z
	v.X = m.M00*x + m.M10*y + m.M20*z
	v.Y = m.M01*x + m.M11*y + m.M21*z
	v.Z = m.M02*x + m.M12*y + m.M22*z
	return m
}

// Get writes the sixteen elements of m to sink in column-major order.
func (m *Mat4[T]) Get(sink Sink[T]) *Mat4[T] {
	sink.Put(m.M00)
	sink.Put(m.M01)
	sink.Put(m.M02)
	sink.Put(m.M03)
	sink.Put(m.M10)
	sink.Put(m.M11)
	sink.Put(m.M12)
	sink.Put(m.M13)
	sink.Put(m.M20)
	sink.Put(m.M21)
	sink.Put(m.M22)
	sink.Put(m.M23)
	sink.Put(m.M30)
	sink.Put(m.M31)
	sink.Put(m.M32)
	sink.Put(m.M33)
	return m
}

// ApproxEqual reports whether every element of m is within epsilon of the
// matching element of o.
func (m *Mat4[T]) ApproxEqual(o *Mat4[T], epsilon T) bool {
	a, b := m.Array(), o.Array()
	for i := range a {
		if abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

// String formats m in row layout.
func (m Mat4[T]) String() string {
	return fmt.Sprintf("Mat4{%g, %g, %g, %g,\n     %g, %g, %g, %g,\n     %g, %g, %g, %g,\n     %g, %g, %g, %g}",
		m.M00, m.M10, m.M20, m.M30,
		m.M01, m.M11, m.M21, m.M31,
		m.M02, m.M12, m.M22, m.M32,
		m.M03, m.M13, m.M23, m.M33)
}

// ConvertMat4 copies src into dest, widening or narrowing each element.
func ConvertMat4[D, S Float](src *Mat4[S], dest *Mat4[D]) *Mat4[D] {
	return dest.SetValues(
		D(src.M00), D(src.M01), D(src.M02), D(src.M03),
		D(src.M10), D(src.M11), D(src.M12), D(src.M13),
		D(src.M20), D(src.M21), D(src.M22), D(src.M23),
		D(src.M30), D(src.M31), D(src.M32), D(src.M33),
	)
}
