package incremental

import (
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/point"
)

var _ kernel.Complex = (*Complex)(nil)

// Dimension returns D.
func (c *Complex) Dimension() int { return c.dim }

// Clear empties the complex back to its zero state.
func (c *Complex) Clear() {
	c.points = make(map[kernel.VertexID]point.Point)
	c.nextVertex = 0
	c.cells = make(map[kernel.CellID]*cellRecord)
	c.nextCell = 0
	c.vertexCell = make(map[kernel.VertexID]kernel.CellID)
	c.hasBbox = false
}

// NumVertices returns the number of finite vertices.
func (c *Complex) NumVertices() int { return len(c.points) }

// NumCells returns the number of cells, finite and infinite.
func (c *Complex) NumCells() int { return len(c.cells) }

// VertexIDs returns every finite vertex's ID, in unspecified order.
func (c *Complex) VertexIDs() []kernel.VertexID {
	ids := make([]kernel.VertexID, 0, len(c.points))
	for v := range c.points {
		ids = append(ids, v)
	}
	return ids
}

// CellIDs returns every cell's ID (finite and infinite), in unspecified order.
func (c *Complex) CellIDs() []kernel.CellID {
	ids := make([]kernel.CellID, 0, len(c.cells))
	for id := range c.cells {
		ids = append(ids, id)
	}
	return ids
}

// InfiniteVertex returns the sentinel infinite vertex ID.
func (c *Complex) InfiniteVertex() kernel.VertexID { return kernel.InfiniteVertexID }

// IsInfiniteVertex reports whether v is the infinite vertex.
func (c *Complex) IsInfiniteVertex(v kernel.VertexID) bool { return v == kernel.InfiniteVertexID }

// IsInfiniteCell reports whether c has the infinite vertex among its
// D+1 vertices.
func (c *Complex) IsInfiniteCell(id kernel.CellID) bool {
	rec, ok := c.cells[id]
	if !ok {
		return false
	}
	return containsVertex(rec.verts, kernel.InfiniteVertexID)
}

// PointOf returns the coordinates of a finite vertex.
func (c *Complex) PointOf(v kernel.VertexID) (point.Point, error) {
	p, ok := c.points[v]
	if !ok {
		return nil, kernel.ErrUnknownVertex
	}
	return p, nil
}

// CellVertices returns the D+1 vertices of cell id.
func (c *Complex) CellVertices(id kernel.CellID) ([]kernel.VertexID, error) {
	rec, ok := c.cells[id]
	if !ok {
		return nil, kernel.ErrUnknownCell
	}
	out := make([]kernel.VertexID, len(rec.verts))
	copy(out, rec.verts)
	return out, nil
}

// CellNeighbor returns the cell sharing the facet opposite vertex index i of
// cell id.
func (c *Complex) CellNeighbor(id kernel.CellID, i int) (kernel.CellID, error) {
	rec, ok := c.cells[id]
	if !ok {
		return kernel.NoCell, kernel.ErrUnknownCell
	}
	if i < 0 || i >= len(rec.neighbors) {
		return kernel.NoCell, kernel.ErrBadIndex
	}
	return rec.neighbors[i], nil
}

// MirrorIndex returns the vertex index, within CellNeighbor(id, i), of the
// vertex opposite the shared facet.
func (c *Complex) MirrorIndex(id kernel.CellID, i int) (int, error) {
	rec, ok := c.cells[id]
	if !ok {
		return -1, kernel.ErrUnknownCell
	}
	if i < 0 || i >= len(rec.mirror) {
		return -1, kernel.ErrBadIndex
	}
	return rec.mirror[i], nil
}

// Bbox returns the bounding box of all finite vertices.
func (c *Complex) Bbox() point.Bbox {
	return c.bbox
}

// IncidentCells returns every cell incident to v, found by flooding the
// neighbor graph outward from v.vertexCell while staying within cells that
// contain v (the "cell circulator" around a vertex).
func (c *Complex) IncidentCells(v kernel.VertexID) ([]kernel.CellID, error) {
	start, ok := c.vertexCell[v]
	if !ok {
		if v == kernel.InfiniteVertexID {
			start = c.anyInfiniteCell()
			if start == kernel.NoCell {
				return nil, nil
			}
		} else {
			return nil, kernel.ErrUnknownVertex
		}
	}

	seen := map[kernel.CellID]bool{start: true}
	queue := []kernel.CellID{start}
	out := []kernel.CellID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		rec := c.cells[cur]
		for _, n := range rec.neighbors {
			if n == kernel.NoCell || seen[n] {
				continue
			}
			nrec := c.cells[n]
			if containsVertex(nrec.verts, v) {
				seen[n] = true
				queue = append(queue, n)
				out = append(out, n)
			}
		}
	}
	return out, nil
}

// AdjacentVertices returns every vertex sharing an edge with v.
func (c *Complex) AdjacentVertices(v kernel.VertexID) ([]kernel.VertexID, error) {
	cells, err := c.IncidentCells(v)
	if err != nil {
		return nil, err
	}
	seen := map[kernel.VertexID]bool{v: true}
	var out []kernel.VertexID
	for _, id := range cells {
		for _, u := range c.cells[id].verts {
			if !seen[u] {
				seen[u] = true
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (c *Complex) anyInfiniteCell() kernel.CellID {
	for id, rec := range c.cells {
		if containsVertex(rec.verts, kernel.InfiniteVertexID) {
			return id
		}
	}
	return kernel.NoCell
}
