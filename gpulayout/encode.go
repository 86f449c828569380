package gpulayout

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/glm"
)

// WGSL sizes of the packed types, in bytes.
const (
	// Mat3UniformSize is the size of a mat3x3<f32>: three columns of
	// vec3<f32>, each padded to 16 bytes.
	Mat3UniformSize = 48

	// Mat4UniformSize is the size of a mat4x4<f32>.
	Mat4UniformSize = 64

	// columnStride is the offset between matrix columns.
	columnStride = 16
)

// byteSink is a glm.Sink that writes little-endian float32 values.
type byteSink[T glm.Float] struct {
	buf []byte
	off int
}

func (s *byteSink[T]) Put(v T) {
	binary.LittleEndian.PutUint32(s.buf[s.off:], math.Float32bits(float32(v)))
	s.off += 4
}

func shortBuffer(need, have int) error {
	return fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, need, have)
}

// EncodeMat4 writes m into dst as a WGSL mat4x4<f32> and returns the
// number of bytes written (Mat4UniformSize). float64 elements are narrowed.
func EncodeMat4[T glm.Float](dst []byte, m *glm.Mat4[T]) (int, error) {
	if len(dst) < Mat4UniformSize {
		return 0, shortBuffer(Mat4UniformSize, len(dst))
	}
	m.Get(&byteSink[T]{buf: dst})
	return Mat4UniformSize, nil
}

// EncodeMat3 writes m into dst as a WGSL mat3x3<f32>. The fourth float of
// every column is padding and is written as zero.
func EncodeMat3[T glm.Float](dst []byte, m *glm.Mat3[T]) (int, error) {
	if len(dst) < Mat3UniformSize {
		return 0, shortBuffer(Mat3UniformSize, len(dst))
	}
	for c := range 3 {
		col := m.Col(c)
		s := byteSink[T]{buf: dst, off: c * columnStride}
		s.Put(col.X)
		s.Put(col.Y)
		s.Put(col.Z)
		s.Put(0)
	}
	return Mat3UniformSize, nil
}

// EncodeInstances writes one mat4x4<f32> per model matrix, back to back,
// for an instance-rate vertex buffer laid out by InstanceBufferLayout.
// Nothing is written when dst is too small.
func EncodeInstances[T glm.Float](dst []byte, models []glm.Mat4[T]) (int, error) {
	need := len(models) * Mat4UniformSize
	if len(dst) < need {
		return 0, shortBuffer(need, len(dst))
	}
	s := byteSink[T]{buf: dst}
	for i := range models {
		models[i].Get(&s)
	}
	glm.Logger().Debug("gpulayout: encoded instances", "count", len(models), "bytes", need)
	return need, nil
}
