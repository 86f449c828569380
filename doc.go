// Package glm provides fixed-size matrix, vector and quaternion types for
// building 3D transformation pipelines.
//
// # Overview
//
// glm is the transform math underneath the GoGPU renderers: 3x3 and 4x4
// matrices, their composition, inversion and transposition, the canonical
// transform constructors (translation, scale, axis-angle rotation,
// perspective, orthographic, look-at), and a MatrixStack that replays the
// legacy push/pop transform stack. Every type is generic over float32 and
// float64; the aliases Mat4f, Mat4d and friends name the two variants.
//
// # Quick Start
//
//	import "github.com/gogpu/glm"
//
//	var model, view, proj, mvp glm.Mat4f
//	model.Rotation(angle, 0, 1, 0)
//	view.LookAt(glm.V3[float32](0, 2, 5), glm.Vec3f{}, glm.V3[float32](0, 1, 0))
//	proj.Perspective(math.Pi/4, 16.0/9.0, 0.1, 100)
//
//	proj.MulInto(&view, &mvp).Mul(&model)
//
//	buf := glm.NewBuffer[float32](16)
//	mvp.Get(buf) // column-major, ready for a uniform upload
//
// # Conventions
//
//   - Column-major storage, field Mcr is column c, row r (OpenGL layout).
//   - Column vectors: a point p is transformed as M · p.
//   - a.Mul(&b) sets a to a · b, so b is applied first.
//   - Constructors such as Translation and Rotation overwrite the receiver.
//     MatrixStack's Translate and Rotate compose instead.
//
// # Aliasing
//
// Operations that write into a destination come in pairs. The plain form
// (MulInto, InvertInto, TransposeInto) stages the result before writing and
// is correct when the destination is also an operand. The Unchecked form
// writes elements as it computes them and requires distinct storage; passing
// an operand as the destination gives wrong numbers, not a panic.
//
// # Singular Matrices
//
// Inverting a matrix whose determinant is exactly zero leaves the target
// unchanged. Callers that must distinguish this case check Invertible first.
//
// # Allocation and Concurrency
//
// Arithmetic never allocates; results go to caller-owned values or Sinks.
// No value is safe for concurrent mutation, and there is no shared state
// between values apart from the package logger.
//
// # Sub-packages
//
//   - interop: conversions to and from golang.org/x/image/math row-major types
//   - gpulayout: WGSL uniform packing and GPU buffer layouts for matrices
package glm

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
