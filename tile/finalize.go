package tile

import "github.com/ddt-go/ddt/kernel"

// counts is the fused per-cell bookkeeping this package's Finalize keeps:
// among a cell's finite incident vertex labels, finite is how many there
// are, lower is how many sort strictly before this tile's index, and equal
// is how many equal it. Together they let "is this tile the median label"
// be answered in O(1) without re-sorting the label list, and let a facet's
// (cell minus one vertex) answer be derived from the cell's counts in O(1)
// per facet — the fused-bookkeeping variant: one O(D) pass per cell
// derives both the cell's own main-ownership and all D+1 of its facets',
// instead of the naive approach of sorting a fresh label list per facet.
type counts struct {
	finite, lower, equal int
}

// isMedian reports whether a tile occupying `lower` strictly-less and
// `equal` equal positions among `finite` labels is the median owner
// (ties broken toward the lower index, matching label.Median).
func (c counts) isMedian() bool {
	if c.finite == 0 {
		return false
	}
	m := (c.finite - 1) / 2
	return c.lower <= m && m < c.lower+c.equal
}

func (t *Triangulation) cellCounts(verts []kernel.VertexID) counts {
	var c counts
	for _, v := range verts {
		if t.Complex.IsInfiniteVertex(v) {
			continue
		}
		c.finite++
		l := t.labelOf(v)
		switch {
		case l < t.ID:
			c.lower++
		case l == t.ID:
			c.equal++
		}
	}
	return c
}

// without1 derives the counts for a cell's label set minus vertex v,
// in O(1) given the cell's own counts.
func (c counts) without1(t *Triangulation, v kernel.VertexID) counts {
	if t.Complex.IsInfiniteVertex(v) {
		return c
	}
	out := c
	out.finite--
	l := t.labelOf(v)
	switch {
	case l < t.ID:
		out.lower--
	case l == t.ID:
		out.equal--
	}
	return out
}

// Finalize recomputes the cached main-vertex/main-facet/main-cell counts
// this tile reports via Stats. It must be called after a batch of
// insertions/removals/relocations before Stats is trusted.
func (t *Triangulation) Finalize() error {
	mainVertices := 0
	for _, v := range t.Complex.VertexIDs() {
		if t.VertexIsLocal(v) {
			mainVertices++
		}
	}

	mainCells := 0
	mainFacets := 0
	for _, c := range t.Complex.CellIDs() {
		verts, err := t.Complex.CellVertices(c)
		if err != nil {
			return err
		}
		base := t.cellCounts(verts)
		if base.isMedian() {
			mainCells++
		}
		for i, v := range verts {
			_ = i
			facetCounts := base.without1(t, v)
			if facetCounts.isMedian() {
				mainFacets++
			}
		}
	}

	t.mainVertices = mainVertices
	t.mainCells = mainCells
	t.mainFacets = mainFacets
	t.stale = false
	return nil
}

// Stats returns the counts computed by the most recent Finalize call,
// plus whether they are stale (a mutation happened since).
func (t *Triangulation) Stats() (mainVertices, mainFacets, mainCells int, stale bool) {
	return t.mainVertices, t.mainFacets, t.mainCells, t.stale
}
