package point

import "errors"

// Sentinel errors for the point package.
var (
	// ErrDimensionMismatch indicates two points (or a point and a bbox)
	// were combined despite having different coordinate counts.
	ErrDimensionMismatch = errors.New("point: dimension mismatch")
	// ErrEmptyDimension indicates a Point or Bbox of dimension zero was
	// used where a positive ambient dimension is required.
	ErrEmptyDimension = errors.New("point: dimension must be > 0")
)

// Point is a D-dimensional coordinate. Its length is the ambient dimension.
type Point []float64

// Dim returns the ambient dimension of p.
func (p Point) Dim() int { return len(p) }

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	c := make(Point, len(p))
	copy(c, p)
	return c
}

// Bbox is an axis-aligned bounding box: the closed interval [Lo[i], Hi[i]]
// on every axis i.
type Bbox struct {
	Lo, Hi Point
}
