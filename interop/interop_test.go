package interop_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glm"
	"github.com/gogpu/glm/interop"
)

func TestMat3FromF32_Transposes(t *testing.T) {
	// Row-major: first row is 1 2 3.
	src := f32.Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	var m glm.Mat3f
	interop.Mat3FromF32(&src, &m)

	assert.Equal(t, glm.V3[float32](1, 4, 7), m.Col(0), "first column")
	assert.Equal(t, float32(2), m.M10, "row 0, column 1")
	assert.Equal(t, float32(4), m.M01, "row 1, column 0")
	assert.Equal(t, src, interop.Mat3ToF32(&m), "export transposes back")
}

func TestMat4FromF32_TranslationColumn(t *testing.T) {
	// A row-major translation keeps its offsets in the last column of
	// each row.
	src := f32.Mat4{
		1, 0, 0, 10,
		0, 1, 0, 20,
		0, 0, 1, 30,
		0, 0, 0, 1,
	}
	var m glm.Mat4f
	interop.Mat4FromF32(&src, &m)

	var want glm.Mat4f
	want.Translation(10, 20, 30)
	assert.Equal(t, want, m)
	assert.Equal(t, src, interop.Mat4ToF32(&m))
}

func TestMat4F64_RoundTripWidens(t *testing.T) {
	var rot glm.Mat4d
	rot.Rotation(0.75, 0, 0.6, 0.8)

	rows := interop.Mat4ToF64(&rot)
	assert.Equal(t, rot.M10, rows[1], "row 0, column 1")

	var back glm.Mat4d
	interop.Mat4FromF64(&rows, &back)
	assert.Equal(t, rot, back)

	var narrow glm.Mat4f
	interop.Mat4FromF64(&rows, &narrow)
	assert.Equal(t, float32(rot.M21), narrow.M21)
}

func TestMat3F64_RoundTrip(t *testing.T) {
	src := f64.Mat3{2, 0, 5, 0, 3, 6, 0, 0, 1}
	var m glm.Mat3d
	interop.Mat3FromF64(&src, &m)
	p := glm.V3(1.0, 1, 1)
	m.Transform(&p)
	assert.Equal(t, glm.V3(7.0, 9, 1), p)
	assert.Equal(t, src, interop.Mat3ToF64(&m))
}

func TestFromColumnMajor_IsDirectCopy(t *testing.T) {
	vals := make([]float32, 16)
	for i := range vals {
		vals[i] = float32(i)
	}
	var m4 glm.Mat4d
	interop.FromColumnMajor4(vals, &m4)
	buf := glm.NewBuffer[float64](16)
	m4.Get(buf)
	for i, v := range buf.Written() {
		assert.Equal(t, float64(i), v)
	}

	var m3 glm.Mat3f
	interop.FromColumnMajor3(vals, &m3)
	assert.Equal(t, [9]float32{0, 1, 2, 3, 4, 5, 6, 7, 8}, m3.Array())
}

func TestRowMajorPanicsOnShortSlice(t *testing.T) {
	var m glm.Mat4f
	assert.Panics(t, func() { interop.FromRowMajor4(make([]float32, 15), &m) })
	assert.Panics(t, func() { interop.ToRowMajor3(new(glm.Mat3f), make([]float64, 8)) })
}

func TestVectors(t *testing.T) {
	v := interop.Vec3FromF32[float64](f32.Vec3{1, 2, 3})
	assert.Equal(t, glm.V3(1.0, 2, 3), v)
	assert.Equal(t, f32.Vec3{1, 2, 3}, interop.Vec3ToF32(v))

	h := interop.Vec4FromF32[float32](f32.Vec4{1, 2, 3, 4})
	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, interop.Vec4ToF32(h))
}

func TestAff3_RoundTrip(t *testing.T) {
	a := f64.Aff3{
		2, 0, 5,
		0, 3, -1,
	}
	var m glm.Mat3d
	interop.FromAff3(&a, &m)
	assert.Equal(t, 1.0, m.M22)

	back, err := interop.ToAff3(&m)
	require.NoError(t, err)
	assert.Equal(t, a, back)
}

func TestToAff3_RejectsProjective(t *testing.T) {
	m := glm.Ident3[float32]()
	m.M02 = 0.5
	_, err := interop.ToAff3(&m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, interop.ErrNotAffine))
}

func TestAff4_RoundTrip(t *testing.T) {
	var m glm.Mat4d
	m.Translation(1, 2, 3).Mul(new(glm.Mat4d).Scaling(4, 5, 6))

	a, err := interop.ToAff4(&m)
	require.NoError(t, err)
	assert.Equal(t, f64.Aff4{4, 0, 0, 1, 0, 5, 0, 2, 0, 0, 6, 3}, a)

	var back glm.Mat4d
	interop.FromAff4(&a, &back)
	assert.Equal(t, m, back)

	var proj glm.Mat4d
	proj.Perspective(1, 1, 1, 10)
	_, err = interop.ToAff4(&proj)
	assert.ErrorIs(t, err, interop.ErrNotAffine)
}

func TestDrawTransform_Translates(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(0, 0, red)
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))

	var m glm.Mat3d
	m.Translation(2, 1)
	err := interop.DrawTransform(dst, &m, src, src.Bounds(), draw.NearestNeighbor, draw.Src)
	require.NoError(t, err)

	assert.Equal(t, red, dst.RGBAAt(2, 1), "source origin lands at (2, 1)")
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(0, 0))
}

func TestDrawTransform_RejectsProjective(t *testing.T) {
	m := glm.Ident3[float64]()
	m.M12 = 1
	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	err := interop.DrawTransform(dst, &m, dst, dst.Bounds(), draw.NearestNeighbor, draw.Src)
	assert.ErrorIs(t, err, interop.ErrNotAffine)
}

func TestTransformPoint26_6(t *testing.T) {
	var m glm.Mat3d
	m.Translation(1.5, -2).Mul(new(glm.Mat3d).Scaling(2, 2, 1))

	p := fixed.Point26_6{X: fixed.I(3), Y: fixed.I(4)}
	got := interop.TransformPoint26_6(&m, p)
	assert.Equal(t, fixed.Point26_6{X: fixed.I(15) / 2, Y: fixed.I(6)}, got)
}
