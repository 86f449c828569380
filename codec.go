package glm

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unsafe"
)

// Binary form: the N² elements as big-endian IEEE-754 values in
// column-major field order (M00, M01, M02, M10, ...), 4 bytes each for
// float32 matrices and 8 for float64. There is no header, length or type
// tag, so the reader must know the matrix size and precision.

var (
	_ io.WriterTo   = (*Mat3f)(nil)
	_ io.ReaderFrom = (*Mat3f)(nil)
	_ io.WriterTo   = (*Mat4d)(nil)
	_ io.ReaderFrom = (*Mat4d)(nil)
)

func scalarSize[T Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func putScalars[T Float](b []byte, vals []T) {
	if scalarSize[T]() == 4 {
		for i, v := range vals {
			binary.BigEndian.PutUint32(b[i*4:], math.Float32bits(float32(v)))
		}
		return
	}
	for i, v := range vals {
		binary.BigEndian.PutUint64(b[i*8:], math.Float64bits(float64(v)))
	}
}

func getScalars[T Float](b []byte, vals []T) {
	if scalarSize[T]() == 4 {
		for i := range vals {
			vals[i] = T(math.Float32frombits(binary.BigEndian.Uint32(b[i*4:])))
		}
		return
	}
	for i := range vals {
		vals[i] = T(math.Float64frombits(binary.BigEndian.Uint64(b[i*8:])))
	}
}

// BinarySize returns the length of m's binary form: 36 or 72 bytes.
func (m *Mat3[T]) BinarySize() int { return 9 * scalarSize[T]() }

// WriteTo writes the binary form of m to w.
func (m *Mat3[T]) WriteTo(w io.Writer) (int64, error) {
	var buf [9 * 8]byte
	vals := m.Array()
	putScalars(buf[:], vals[:])
	n, err := w.Write(buf[:m.BinarySize()])
	return int64(n), err
}

// ReadFrom reads exactly one binary-form matrix from r into m. A short read
// returns the stream's error (io.EOF or io.ErrUnexpectedEOF) and leaves m
// unchanged.
func (m *Mat3[T]) ReadFrom(r io.Reader) (int64, error) {
	var buf [9 * 8]byte
	n, err := io.ReadFull(r, buf[:m.BinarySize()])
	if err != nil {
		return int64(n), err
	}
	var vals [9]T
	getScalars(buf[:], vals[:])
	m.SetSlice(vals[:])
	return int64(n), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m *Mat3[T]) MarshalBinary() ([]byte, error) {
	b := make([]byte, m.BinarySize())
	vals := m.Array()
	putScalars(b, vals[:])
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Bytes past the
// matrix are ignored.
func (m *Mat3[T]) UnmarshalBinary(data []byte) error {
	if len(data) < m.BinarySize() {
		return fmt.Errorf("glm: unmarshal Mat3 from %d bytes: %w", len(data), io.ErrUnexpectedEOF)
	}
	var vals [9]T
	getScalars(data, vals[:])
	m.SetSlice(vals[:])
	return nil
}

// BinarySize returns the length of m's binary form: 64 or 128 bytes.
func (m *Mat4[T]) BinarySize() int { return 16 * scalarSize[T]() }

// WriteTo writes the binary form of m to w.
func (m *Mat4[T]) WriteTo(w io.Writer) (int64, error) {
	var buf [16 * 8]byte
	vals := m.Array()
	putScalars(buf[:], vals[:])
	n, err := w.Write(buf[:m.BinarySize()])
	return int64(n), err
}

// ReadFrom reads exactly one binary-form matrix from r into m, leaving m
// unchanged on a short read.
func (m *Mat4[T]) ReadFrom(r io.Reader) (int64, error) {
	var buf [16 * 8]byte
	n, err := io.ReadFull(r, buf[:m.BinarySize()])
	if err != nil {
		return int64(n), err
	}
	var vals [16]T
	getScalars(buf[:], vals[:])
	m.SetSlice(vals[:])
	return int64(n), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m *Mat4[T]) MarshalBinary() ([]byte, error) {
	b := make([]byte, m.BinarySize())
	vals := m.Array()
	putScalars(b, vals[:])
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Bytes past the
// matrix are ignored.
func (m *Mat4[T]) UnmarshalBinary(data []byte) error {
	if len(data) < m.BinarySize() {
		return fmt.Errorf("glm: unmarshal Mat4 from %d bytes: %w", len(data), io.ErrUnexpectedEOF)
	}
	var vals [16]T
	getScalars(data, vals[:])
	m.SetSlice(vals[:])
	return nil
}
