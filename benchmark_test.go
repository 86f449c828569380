package glm

import "testing"

// BenchmarkMat4_Mul compares the staged and unchecked products.
func BenchmarkMat4_Mul(b *testing.B) {
	a := sample4()
	var r, dest Mat4d
	r.Perspective(1, 1.5, 0.1, 100)

	b.Run("MulInto", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			a.MulInto(&r, &dest)
		}
	})
	b.Run("MulIntoUnchecked", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			a.MulIntoUnchecked(&r, &dest)
		}
	})
	b.Run("MulInPlace", func(b *testing.B) {
		b.ReportAllocs()
		m := a
		for i := 0; i < b.N; i++ {
			m.Set(&a).Mul(&r)
		}
	})
}

// BenchmarkMat4_Invert benchmarks inversion in both precisions.
func BenchmarkMat4_Invert(b *testing.B) {
	src := sample4()
	var srcf Mat4f
	ConvertMat4(&src, &srcf)

	b.Run("float64", func(b *testing.B) {
		var dest Mat4d
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			src.InvertInto(&dest)
		}
	})
	b.Run("float32", func(b *testing.B) {
		var dest Mat4f
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			srcf.InvertIntoUnchecked(&dest)
		}
	})
}

// BenchmarkMat3_Rotation benchmarks the axis-angle constructor.
func BenchmarkMat3_Rotation(b *testing.B) {
	var m Mat3f
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Rotation(float32(i)*0.001, 0, 0.6, 0.8)
	}
}

// BenchmarkMatrixStack_PushTransformPop measures one scene-graph node visit.
func BenchmarkMatrixStack_PushTransformPop(b *testing.B) {
	s, err := NewMatrixStack[float32](32)
	if err != nil {
		b.Fatal(err)
	}
	buf := NewBuffer[float32](16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Push()
		s.Translate(1, 2, 3)
		s.Rotate(0.5, 0, 1, 0)
		s.Scale(2, 2, 2)
		buf.Rewind()
		s.GetTo(buf)
		_ = s.Pop()
	}
}

// BenchmarkMat4_Export benchmarks writing a matrix to a Buffer.
func BenchmarkMat4_Export(b *testing.B) {
	m := seq4()
	buf := NewBuffer[float32](16)
	b.ReportAllocs()
	b.SetBytes(64)
	for i := 0; i < b.N; i++ {
		buf.Rewind()
		m.Get(buf)
	}
}
