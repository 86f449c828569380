package interop

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glm"
)

// FromAff3 sets dest to the homogeneous 3x3 form of a, whose implicit
// bottom row is (0, 0, 1).
func FromAff3[T glm.Float](a *f64.Aff3, dest *glm.Mat3[T]) *glm.Mat3[T] {
	return dest.SetValues(
		T(a[0]), T(a[3]), 0,
		T(a[1]), T(a[4]), 0,
		T(a[2]), T(a[5]), 1,
	)
}

// ToAff3 returns the top two rows of m. It fails with ErrNotAffine when
// the bottom row is not exactly (0, 0, 1).
func ToAff3[T glm.Float](m *glm.Mat3[T]) (f64.Aff3, error) {
	if m.M02 != 0 || m.M12 != 0 || m.M22 != 1 {
		return f64.Aff3{}, fmt.Errorf("%w: bottom row (%g, %g, %g)", ErrNotAffine, m.M02, m.M12, m.M22)
	}
	return f64.Aff3{
		float64(m.M00), float64(m.M10), float64(m.M20),
		float64(m.M01), float64(m.M11), float64(m.M21),
	}, nil
}

// FromAff4 sets dest to the homogeneous 4x4 form of a, whose implicit
// bottom row is (0, 0, 0, 1).
func FromAff4[T glm.Float](a *f64.Aff4, dest *glm.Mat4[T]) *glm.Mat4[T] {
	return dest.SetValues(
		T(a[0]), T(a[4]), T(a[8]), 0,
		T(a[1]), T(a[5]), T(a[9]), 0,
		T(a[2]), T(a[6]), T(a[10]), 0,
		T(a[3]), T(a[7]), T(a[11]), 1,
	)
}

// ToAff4 returns the top three rows of m, failing with ErrNotAffine for a
// projective matrix.
func ToAff4[T glm.Float](m *glm.Mat4[T]) (f64.Aff4, error) {
	if m.M03 != 0 || m.M13 != 0 || m.M23 != 0 || m.M33 != 1 {
		return f64.Aff4{}, fmt.Errorf("%w: bottom row (%g, %g, %g, %g)", ErrNotAffine, m.M03, m.M13, m.M23, m.M33)
	}
	var rows [16]float64
	ToRowMajor4(m, rows[:])
	var out f64.Aff4
	copy(out[:], rows[:12])
	return out, nil
}

// DrawTransform draws the sr part of src onto dst through the 2D affine
// transform m, which maps source coordinates to destination coordinates.
// t is usually one of draw.NearestNeighbor, draw.ApproxBiLinear,
// draw.BiLinear or draw.CatmullRom.
func DrawTransform(dst draw.Image, m *glm.Mat3d, src image.Image, sr image.Rectangle, t draw.Transformer, op draw.Op) error {
	aff, err := ToAff3(m)
	if err != nil {
		return err
	}
	t.Transform(dst, aff, src, sr, op, nil)
	return nil
}

// TransformPoint26_6 applies the affine part of m to a 26.6 fixed-point
// point, as used for glyph positioning, rounding the result to the nearest
// 1/64. The bottom row of m is ignored.
func TransformPoint26_6[T glm.Float](m *glm.Mat3[T], p fixed.Point26_6) fixed.Point26_6 {
	x := float64(p.X) / 64
	y := float64(p.Y) / 64
	nx := float64(m.M00)*x + float64(m.M10)*y + float64(m.M20)
	ny := float64(m.M01)*x + float64(m.M11)*y + float64(m.M21)
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(nx * 64)),
		Y: fixed.Int26_6(math.Round(ny * 64)),
	}
}
