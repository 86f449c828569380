package interop

import "errors"

// ErrNotAffine is returned when a Mat3 whose bottom row is not (0, 0, 1)
// is exported to an affine type.
var ErrNotAffine = errors.New("interop: matrix is not affine")
