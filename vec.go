package glm

import "math"

// Vec2 is a 2D vector, used as the (x, y) argument of Mat3 translations.
type Vec2[T Float] struct {
	X, Y T
}

// Vec3 is a 3D position or direction.
// Matrices consume it as a plain (x, y, z) tuple.
type Vec3[T Float] struct {
	X, Y, Z T
}

// Vec4 is a homogeneous 3D coordinate.
type Vec4[T Float] struct {
	X, Y, Z, W T
}

// V2 is a convenience function to create a Vec2.
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// V3 is a convenience function to create a Vec3.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// V4 is a convenience function to create a Vec4.
func V4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of two vectors.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3[T]) Mul(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec3[T]) Length() T {
	return sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v Vec3[T]) Normalize() Vec3[T] {
	length := v.Length()
	if length == 0 {
		return Vec3[T]{}
	}
	return Vec3[T]{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec3[T]) Approx(w Vec3[T], epsilon T) bool {
	return abs(v.X-w.X) <= epsilon && abs(v.Y-w.Y) <= epsilon && abs(v.Z-w.Z) <= epsilon
}

// Vec4 extends v with the given w component.
func (v Vec3[T]) Vec4(w T) Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Vec3 drops the w component without dividing by it.
func (v Vec4[T]) Vec3() Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// PerspectiveDivide returns (x/w, y/w, z/w). A zero w yields ±Inf or NaN
// components, as the division dictates.
func (v Vec4[T]) PerspectiveDivide() Vec3[T] {
	return Vec3[T]{X: v.X / v.W, Y: v.Y / v.W, Z: v.Z / v.W}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec4[T]) Approx(w Vec4[T], epsilon T) bool {
	return abs(v.X-w.X) <= epsilon && abs(v.Y-w.Y) <= epsilon &&
		abs(v.Z-w.Z) <= epsilon && abs(v.W-w.W) <= epsilon
}

// IsFinite reports whether every component is neither NaN nor ±Inf.
func (v Vec3[T]) IsFinite() bool {
	for _, c := range [3]T{v.X, v.Y, v.Z} {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
