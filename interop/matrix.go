package interop

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/glm"
)

// convertSink writes each value it receives into dst, converting precision.
type convertSink[S, D glm.Float] struct {
	dst []D
	n   int
}

func (s *convertSink[S, D]) Put(v S) {
	s.dst[s.n] = D(v)
	s.n++
}

// FromRowMajor3 sets dest from nine row-major values, s[3*r + c] being the
// element in row r, column c. It panics if len(s) < 9.
func FromRowMajor3[T, S glm.Float](s []S, dest *glm.Mat3[T]) *glm.Mat3[T] {
	_ = s[8]
	return dest.SetValues(
		T(s[0]), T(s[3]), T(s[6]),
		T(s[1]), T(s[4]), T(s[7]),
		T(s[2]), T(s[5]), T(s[8]),
	)
}

// FromRowMajor4 sets dest from sixteen row-major values. It panics if
// len(s) < 16.
func FromRowMajor4[T, S glm.Float](s []S, dest *glm.Mat4[T]) *glm.Mat4[T] {
	_ = s[15]
	return dest.SetValues(
		T(s[0]), T(s[4]), T(s[8]), T(s[12]),
		T(s[1]), T(s[5]), T(s[9]), T(s[13]),
		T(s[2]), T(s[6]), T(s[10]), T(s[14]),
		T(s[3]), T(s[7]), T(s[11]), T(s[15]),
	)
}

// FromColumnMajor3 sets dest from nine column-major values. This is a
// straight copy with precision conversion.
func FromColumnMajor3[T, S glm.Float](s []S, dest *glm.Mat3[T]) *glm.Mat3[T] {
	_ = s[8]
	return dest.SetValues(
		T(s[0]), T(s[1]), T(s[2]),
		T(s[3]), T(s[4]), T(s[5]),
		T(s[6]), T(s[7]), T(s[8]),
	)
}

// FromColumnMajor4 sets dest from sixteen column-major values.
func FromColumnMajor4[T, S glm.Float](s []S, dest *glm.Mat4[T]) *glm.Mat4[T] {
	_ = s[15]
	return dest.SetValues(
		T(s[0]), T(s[1]), T(s[2]), T(s[3]),
		T(s[4]), T(s[5]), T(s[6]), T(s[7]),
		T(s[8]), T(s[9]), T(s[10]), T(s[11]),
		T(s[12]), T(s[13]), T(s[14]), T(s[15]),
	)
}

// ToRowMajor3 writes m into dst in row-major order. It panics if
// len(dst) < 9.
func ToRowMajor3[D, S glm.Float](m *glm.Mat3[S], dst []D) {
	_ = dst[8]
	m.TransposeTo(&convertSink[S, D]{dst: dst})
}

// ToRowMajor4 writes m into dst in row-major order. It panics if
// len(dst) < 16.
func ToRowMajor4[D, S glm.Float](m *glm.Mat4[S], dst []D) {
	_ = dst[15]
	m.TransposeTo(&convertSink[S, D]{dst: dst})
}

// Mat3FromF32 sets dest from an f32.Mat3.
func Mat3FromF32[T glm.Float](src *f32.Mat3, dest *glm.Mat3[T]) *glm.Mat3[T] {
	return FromRowMajor3(src[:], dest)
}

// Mat3ToF32 returns m as an f32.Mat3, narrowing float64 elements.
func Mat3ToF32[T glm.Float](m *glm.Mat3[T]) f32.Mat3 {
	var out f32.Mat3
	ToRowMajor3(m, out[:])
	return out
}

// Mat4FromF32 sets dest from an f32.Mat4.
func Mat4FromF32[T glm.Float](src *f32.Mat4, dest *glm.Mat4[T]) *glm.Mat4[T] {
	return FromRowMajor4(src[:], dest)
}

// Mat4ToF32 returns m as an f32.Mat4.
func Mat4ToF32[T glm.Float](m *glm.Mat4[T]) f32.Mat4 {
	var out f32.Mat4
	ToRowMajor4(m, out[:])
	return out
}

// Mat3FromF64 sets dest from an f64.Mat3.
func Mat3FromF64[T glm.Float](src *f64.Mat3, dest *glm.Mat3[T]) *glm.Mat3[T] {
	return FromRowMajor3(src[:], dest)
}

// Mat3ToF64 returns m as an f64.Mat3.
func Mat3ToF64[T glm.Float](m *glm.Mat3[T]) f64.Mat3 {
	var out f64.Mat3
	ToRowMajor3(m, out[:])
	return out
}

// Mat4FromF64 sets dest from an f64.Mat4.
func Mat4FromF64[T glm.Float](src *f64.Mat4, dest *glm.Mat4[T]) *glm.Mat4[T] {
	return FromRowMajor4(src[:], dest)
}

// Mat4ToF64 returns m as an f64.Mat4.
func Mat4ToF64[T glm.Float](m *glm.Mat4[T]) f64.Mat4 {
	var out f64.Mat4
	ToRowMajor4(m, out[:])
	return out
}

// Vec3FromF32 converts an f32.Vec3.
func Vec3FromF32[T glm.Float](v f32.Vec3) glm.Vec3[T] {
	return glm.V3(T(v[0]), T(v[1]), T(v[2]))
}

// Vec3ToF32 converts v to an f32.Vec3.
func Vec3ToF32[T glm.Float](v glm.Vec3[T]) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Vec4FromF32 converts an f32.Vec4.
func Vec4FromF32[T glm.Float](v f32.Vec4) glm.Vec4[T] {
	return glm.V4(T(v[0]), T(v[1]), T(v[2]), T(v[3]))
}

// Vec4ToF32 converts v to an f32.Vec4.
func Vec4ToF32[T glm.Float](v glm.Vec4[T]) f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}
