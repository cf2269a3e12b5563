package tile

import (
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
)

// Insert inserts p labelled lbl, returning the vertex now holding it and
// whether a new vertex was created. When the point already had a vertex,
// the existing stored label must already equal lbl — a mismatch means a
// point was mislabelled somewhere upstream and is surfaced as an error
// rather than silently overwritten. Repartition relabels legitimately,
// but only after a full Clear, so it never hits this path.
func (t *Triangulation) Insert(p point.Point, lbl label.Index, hint kernel.CellID) (kernel.VertexID, bool, error) {
	v, created, err := t.Complex.InsertPoint(p, hint)
	if err != nil {
		return v, created, err
	}
	if !created {
		if existing, ok := t.labels[v]; ok && existing != lbl {
			return v, created, ErrLabelMismatch
		}
	}
	t.labels[v] = lbl
	t.stale = true
	return v, created, nil
}

// Remove deletes v from this tile's local complex.
func (t *Triangulation) Remove(v kernel.VertexID) error {
	if err := t.Complex.Remove(v); err != nil {
		return err
	}
	delete(t.labels, v)
	t.stale = true
	return nil
}

// LocateVertex finds the cell containing p, with an optional hint.
func (t *Triangulation) LocateVertex(p point.Point, hint kernel.CellID) (kernel.CellID, error) {
	return t.Complex.Locate(p, hint)
}

// Simplify removes v if it is foreign and every one of its finite
// adjacent vertices is also foreign — a vertex with no local neighbor
// carries no information this tile needs to keep. Returns whether v was
// removed.
func (t *Triangulation) Simplify(v kernel.VertexID) (bool, error) {
	if !t.VertexIsForeign(v) {
		return false, nil
	}
	adj, err := t.Complex.AdjacentVertices(v)
	if err != nil {
		return false, err
	}
	for _, u := range adj {
		if t.Complex.IsInfiniteVertex(u) {
			continue
		}
		if t.VertexIsLocal(u) {
			return false, nil
		}
	}
	if err := t.Remove(v); err != nil {
		return false, err
	}
	return true, nil
}
