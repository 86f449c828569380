// Package interop converts between glm's column-major matrices and the
// row-major types of golang.org/x/image/math.
//
// glm stores element (row r, column c) in field Mcr. The f32 and f64
// packages of golang.org/x/image/math store it at index r*N + c. Every
// import through this package is therefore a transpose, and every export
// transposes back. Column-major sources such as OpenGL uniform arrays copy
// straight across with FromColumnMajor3 and FromColumnMajor4.
//
// The Aff3 helpers bridge glm's 2D homogeneous Mat3 to f64.Aff3, the
// affine form used by golang.org/x/image/draw, so a transform composed with
// glm can drive an image warp directly:
//
//	var m glm.Mat3d
//	m.Translation(float64(w)/2, float64(h)/2).Mul(new(glm.Mat3d).Rotation(angle, 0, 0, 1))
//	err := interop.DrawTransform(dst, &m, src, src.Bounds(), draw.BiLinear, draw.Over)
package interop
