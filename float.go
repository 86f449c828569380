package glm

import "math"

// Float is the set of scalar types a matrix, vector or quaternion can be
// built from. float32 is the precision GPUs consume; float64 is used for
// scene-graph accumulation where drift matters.
type Float interface {
	~float32 | ~float64
}

// Single- and double-precision instantiations.
type (
	Mat3f = Mat3[float32]
	Mat3d = Mat3[float64]
	Mat4f = Mat4[float32]
	Mat4d = Mat4[float64]

	Vec2f = Vec2[float32]
	Vec2d = Vec2[float64]
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
	Vec4f = Vec4[float32]
	Vec4d = Vec4[float64]

	Quatf = Quat[float32]
	Quatd = Quat[float64]
)

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sincos[T Float](angle T) (sin, cos T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}

func sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

func tan[T Float](v T) T {
	return T(math.Tan(float64(v)))
}
