package incremental

import (
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/point"
)

// cellRecord is one D-simplex: D+1 vertices, D+1 neighbors (neighbors[i] is
// the cell across the facet opposite verts[i]), and the mirror index of
// this cell within that neighbor.
type cellRecord struct {
	verts     []kernel.VertexID
	neighbors []kernel.CellID
	mirror    []int
}

// Complex is the incremental kernel's concrete kernel.Complex.
type Complex struct {
	dim int

	points     map[kernel.VertexID]point.Point
	nextVertex kernel.VertexID

	cells     map[kernel.CellID]*cellRecord
	nextCell  kernel.CellID
	vertexCell map[kernel.VertexID]kernel.CellID // one incident cell per vertex, for locate/walk starts

	bbox     point.Bbox
	hasBbox  bool
}

// New returns an empty Complex of dimension dim.
func New(dim int) *Complex {
	return &Complex{
		dim:        dim,
		points:     make(map[kernel.VertexID]point.Point),
		cells:      make(map[kernel.CellID]*cellRecord),
		vertexCell: make(map[kernel.VertexID]kernel.CellID),
	}
}

// facetBoundary is one outward-facing facet of a region being retriangulated:
// the facet's vertex set plus the cell/index on the far side of it that
// survives the operation (possibly kernel.NoCell, for a facet on the
// complex's current outer boundary — which cannot happen once the infinite
// vertex is present, since every cell has D+1 real neighbors).
type facetBoundary struct {
	verts   []kernel.VertexID
	outside kernel.CellID
	mirror  int
}
