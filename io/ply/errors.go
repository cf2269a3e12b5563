package ply

import "errors"

// ErrUnsupportedDimension is returned when asked to write a kernel
// dimension other than 2 or 3 (PLY faces are triangles; this writer only
// knows how to produce them from triangulated or tetrahedralized cells).
var ErrUnsupportedDimension = errors.New("ply: unsupported dimension (want 2 or 3)")
