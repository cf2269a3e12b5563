package kernel

import "errors"

// Sentinel errors for the kernel package and its implementations.
var (
	// ErrBadDimension indicates a non-positive or unsupported ambient dimension.
	ErrBadDimension = errors.New("kernel: bad dimension")
	// ErrUnknownVertex indicates a VertexID not present in the complex.
	ErrUnknownVertex = errors.New("kernel: unknown vertex")
	// ErrUnknownCell indicates a CellID not present in the complex.
	ErrUnknownCell = errors.New("kernel: unknown cell")
	// ErrDegenerate indicates a predicate could not resolve an orientation
	// because the input points are exactly coplanar/cocircular/degenerate
	// under floating-point arithmetic.
	ErrDegenerate = errors.New("kernel: degenerate configuration")
	// ErrBadIndex indicates a vertex/facet index outside [0, D].
	ErrBadIndex = errors.New("kernel: index out of range")
)

// VertexID identifies a vertex within one Complex. It is stable for the
// vertex's lifetime (until Remove), per the design's "id(v) is O(1) and
// stable under insertions" requirement.
type VertexID int

// CellID identifies a cell (a D-simplex) within one Complex.
type CellID int

// NoCell is the sentinel "no such cell" / end-iterator value.
const NoCell CellID = -1

// InfiniteVertexID is the sentinel vertex all Complex implementations use
// for the point at infinity. It never carries a tile label.
const InfiniteVertexID VertexID = -1
