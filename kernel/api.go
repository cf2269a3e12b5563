package kernel

import "github.com/ddt-go/ddt/point"

// Kernel constructs empty Complex values for one fixed ambient dimension.
// A Kernel is stateless beyond its Dimension; all mutable state lives in
// the Complex values it produces.
type Kernel interface {
	// Dimension returns the ambient dimension D this kernel builds
	// complexes for.
	Dimension() int
	// NewComplex returns a new, empty Complex of dimension D.
	NewComplex() Complex
}

// Complex is one local simplicial Delaunay complex: the "local
// triangulation" of design §3. It is not safe for concurrent use, and
// tile.Triangulation adds no lock around it: a complex must be used from
// one goroutine at a time.
type Complex interface {
	// Dimension returns D.
	Dimension() int
	// Clear empties the complex back to its zero state.
	Clear()
	// NumVertices returns the number of finite vertices.
	NumVertices() int
	// NumCells returns the number of cells, finite and infinite.
	NumCells() int
	// VertexIDs returns every finite vertex's ID, in unspecified order.
	VertexIDs() []VertexID
	// CellIDs returns every cell's ID (finite and infinite), in unspecified order.
	CellIDs() []CellID
	// InfiniteVertex returns the sentinel infinite vertex ID.
	InfiniteVertex() VertexID
	// IsInfiniteVertex reports whether v is the infinite vertex.
	IsInfiniteVertex(v VertexID) bool
	// IsInfiniteCell reports whether c has the infinite vertex among its
	// D+1 vertices.
	IsInfiniteCell(c CellID) bool
	// PointOf returns the coordinates of a finite vertex.
	PointOf(v VertexID) (point.Point, error)
	// IncidentCells returns every cell incident to v.
	IncidentCells(v VertexID) ([]CellID, error)
	// AdjacentVertices returns every vertex sharing an edge with v.
	AdjacentVertices(v VertexID) ([]VertexID, error)
	// Locate returns the cell containing p, walking from hint if given
	// (hint == NoCell means "no hint available").
	Locate(p point.Point, hint CellID) (CellID, error)
	// InsertPoint inserts p (with an optional location hint) and returns
	// the vertex now holding it plus whether a new vertex was created
	// (false means p already had a vertex at that location).
	InsertPoint(p point.Point, hint CellID) (VertexID, bool, error)
	// Remove deletes v from the complex, restoring a valid Delaunay
	// complex over the remaining vertices.
	Remove(v VertexID) error
	// CellVertices returns the D+1 vertices of c, in the complex's
	// internal order (not guaranteed to agree across two Complex values
	// holding copies of the "same" cell — see design §4.5 on relocate).
	CellVertices(c CellID) ([]VertexID, error)
	// CellNeighbor returns the cell sharing the facet opposite vertex
	// index i of c.
	CellNeighbor(c CellID, i int) (CellID, error)
	// MirrorIndex returns the vertex index, within CellNeighbor(c, i),
	// of the vertex opposite the shared facet (the covertex of the
	// mirrored facet).
	MirrorIndex(c CellID, i int) (int, error)
	// Bbox returns the bounding box of all finite vertices.
	Bbox() point.Bbox
	// SpatialSort returns ids reordered for insertion locality (the
	// kernel contract's spatial_sort).
	SpatialSort(ids []VertexID) []VertexID
}
