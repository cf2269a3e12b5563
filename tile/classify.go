package tile

import (
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/label"
)

// VertexIsLocal reports whether v's label equals this tile's index. The
// infinite vertex is never local (it carries no label).
func (t *Triangulation) VertexIsLocal(v kernel.VertexID) bool {
	if t.Complex.IsInfiniteVertex(v) {
		return false
	}
	return t.labelOf(v) == t.ID
}

// VertexIsForeign is the complement of VertexIsLocal among finite vertices.
func (t *Triangulation) VertexIsForeign(v kernel.VertexID) bool {
	if t.Complex.IsInfiniteVertex(v) {
		return false
	}
	return t.labelOf(v) != t.ID
}

// VertexIsMain reports whether this tile holds the canonical representative
// of v. A vertex's main tile is always id(v) itself, so this is identical
// to VertexIsLocal; it exists as a separate name because the cell/facet
// main rule is different (median label, not identity).
func (t *Triangulation) VertexIsMain(v kernel.VertexID) bool {
	return t.VertexIsLocal(v)
}

func (t *Triangulation) finiteLabels(verts []kernel.VertexID) []label.Index {
	var labels []label.Index
	for _, v := range verts {
		if t.Complex.IsInfiniteVertex(v) {
			continue
		}
		labels = append(labels, t.labelOf(v))
	}
	return labels
}

// FacetIsLocal reports whether every finite vertex of the facet opposite
// vertex index i of cell c is local.
func (t *Triangulation) FacetIsLocal(c kernel.CellID, i int) (bool, error) {
	labels, err := t.facetLabels(c, i)
	if err != nil {
		return false, err
	}
	for _, l := range labels {
		if l != t.ID {
			return false, nil
		}
	}
	return len(labels) > 0, nil
}

// FacetIsForeign reports whether every finite vertex of the facet is
// foreign.
func (t *Triangulation) FacetIsForeign(c kernel.CellID, i int) (bool, error) {
	labels, err := t.facetLabels(c, i)
	if err != nil {
		return false, err
	}
	for _, l := range labels {
		if l == t.ID {
			return false, nil
		}
	}
	return len(labels) > 0, nil
}

// FacetIsMixed reports whether the facet has both local and foreign finite
// vertices.
func (t *Triangulation) FacetIsMixed(c kernel.CellID, i int) (bool, error) {
	loc, err := t.FacetIsLocal(c, i)
	if err != nil {
		return false, err
	}
	if loc {
		return false, nil
	}
	forn, err := t.FacetIsForeign(c, i)
	if err != nil {
		return false, err
	}
	return !forn, nil
}

// FacetIsMain reports whether this tile is the median-label owner of the
// facet opposite vertex index i of cell c.
func (t *Triangulation) FacetIsMain(c kernel.CellID, i int) (bool, error) {
	labels, err := t.facetLabels(c, i)
	if err != nil {
		return false, err
	}
	if len(labels) == 0 {
		return false, nil
	}
	return label.Median(labels) == t.ID, nil
}

func (t *Triangulation) facetLabels(c kernel.CellID, i int) ([]label.Index, error) {
	verts, err := t.Complex.CellVertices(c)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(verts) {
		return nil, kernel.ErrBadIndex
	}
	facet := make([]kernel.VertexID, 0, len(verts)-1)
	for j, v := range verts {
		if j != i {
			facet = append(facet, v)
		}
	}
	return t.finiteLabels(facet), nil
}

// CellIsLocal reports whether every finite vertex of c is local.
func (t *Triangulation) CellIsLocal(c kernel.CellID) (bool, error) {
	labels, err := t.cellLabels(c)
	if err != nil {
		return false, err
	}
	for _, l := range labels {
		if l != t.ID {
			return false, nil
		}
	}
	return len(labels) > 0, nil
}

// CellIsForeign reports whether every finite vertex of c is foreign.
func (t *Triangulation) CellIsForeign(c kernel.CellID) (bool, error) {
	labels, err := t.cellLabels(c)
	if err != nil {
		return false, err
	}
	for _, l := range labels {
		if l == t.ID {
			return false, nil
		}
	}
	return len(labels) > 0, nil
}

// CellIsMixed reports whether c has both local and foreign finite vertices.
func (t *Triangulation) CellIsMixed(c kernel.CellID) (bool, error) {
	loc, err := t.CellIsLocal(c)
	if err != nil {
		return false, err
	}
	if loc {
		return false, nil
	}
	forn, err := t.CellIsForeign(c)
	if err != nil {
		return false, err
	}
	return !forn, nil
}

// CellIsMain reports whether this tile is the median-label owner of c.
func (t *Triangulation) CellIsMain(c kernel.CellID) (bool, error) {
	labels, err := t.cellLabels(c)
	if err != nil {
		return false, err
	}
	if len(labels) == 0 {
		return false, nil
	}
	return label.Median(labels) == t.ID, nil
}

func (t *Triangulation) cellLabels(c kernel.CellID) ([]label.Index, error) {
	verts, err := t.Complex.CellVertices(c)
	if err != nil {
		return nil, err
	}
	return t.finiteLabels(verts), nil
}

// CellLabelSet returns the distinct tile labels among c's finite vertices.
func (t *Triangulation) CellLabelSet(c kernel.CellID) ([]label.Index, error) {
	labels, err := t.cellLabels(c)
	if err != nil {
		return nil, err
	}
	return dedupLabels(labels), nil
}

// FacetLabelSet returns the distinct tile labels among the finite vertices
// of the facet opposite vertex index i of cell c.
func (t *Triangulation) FacetLabelSet(c kernel.CellID, i int) ([]label.Index, error) {
	labels, err := t.facetLabels(c, i)
	if err != nil {
		return nil, err
	}
	return dedupLabels(labels), nil
}

func dedupLabels(labels []label.Index) []label.Index {
	seen := make(map[label.Index]bool, len(labels))
	out := make([]label.Index, 0, len(labels))
	for _, l := range labels {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
