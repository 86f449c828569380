package gpulayout

import "errors"

// ErrShortBuffer is returned when the destination slice cannot hold the
// encoded layout.
var ErrShortBuffer = errors.New("gpulayout: destination buffer too small")
