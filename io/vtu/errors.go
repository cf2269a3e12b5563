package vtu

import "errors"

// ErrUnsupportedDimension is returned for kernels outside {2, 3}: VTU
// piece cell types are only defined here for VTK_TRIANGLE and VTK_TETRA.
var ErrUnsupportedDimension = errors.New("vtu: unsupported dimension (want 2 or 3)")
