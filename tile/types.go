package tile

import (
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/label"
)

// Triangulation is one tile's local Delaunay complex plus a tile-index
// label per finite vertex. It is the "local view" every node in a
// distributed triangulation keeps for the subset of points it owns or
// has received as boundary context.
type Triangulation struct {
	ID      label.Index
	Complex kernel.Complex

	labels map[kernel.VertexID]label.Index

	// Cached counts refreshed by Finalize; stale until the first
	// Finalize call after construction or any mutation.
	mainVertices int
	mainFacets   int
	mainCells    int
	stale        bool
}

// New returns an empty Triangulation labelled id, backed by a fresh
// complex from k.
func New(id label.Index, k kernel.Kernel) *Triangulation {
	return &Triangulation{
		ID:      id,
		Complex: k.NewComplex(),
		labels:  make(map[kernel.VertexID]label.Index),
		stale:   true,
	}
}

// NeighborMsg names a tile that should receive Vertex's point: either
// Vertex is a just-inserted vertex and one of its neighbors carries that
// tile's label, or Vertex is a neighbor of a just-inserted vertex that
// carries that tile's label.
type NeighborMsg struct {
	To     label.Index
	Vertex kernel.VertexID
}

func (t *Triangulation) labelOf(v kernel.VertexID) label.Index {
	if v == kernel.InfiniteVertexID {
		return label.Invalid
	}
	return t.labels[v]
}

// LabelOf returns the tile-index label recorded for v (label.Invalid for
// the infinite vertex or an unknown vertex).
func (t *Triangulation) LabelOf(v kernel.VertexID) label.Index {
	return t.labelOf(v)
}
