package incremental

import "github.com/ddt-go/ddt/kernel"

// Remove deletes v from the complex, restoring a valid Delaunay complex
// over the remaining vertices. It reuses retriangulateCavity — the same
// cone-a-star-shaped-cavity operation Bowyer-Watson insertion runs — coning
// v's link (the boundary of its star, one facet per incident cell opposite
// v) from a reference vertex already on that link, instead of from a
// freshly inserted one. Every other vertex keeps its VertexID.
func (c *Complex) Remove(v kernel.VertexID) error {
	if v == kernel.InfiniteVertexID {
		return kernel.ErrBadIndex
	}
	if _, ok := c.points[v]; !ok {
		return kernel.ErrUnknownVertex
	}

	star, err := c.IncidentCells(v)
	if err != nil {
		return err
	}
	if len(star) == 0 {
		delete(c.points, v)
		delete(c.vertexCell, v)
		return nil
	}

	starSet := make(map[kernel.CellID]bool, len(star))
	for _, id := range star {
		starSet[id] = true
	}

	var link []facetBoundary
	var ref kernel.VertexID
	haveRef := false
	for _, cellID := range star {
		rec := c.cells[cellID]
		idx := -1
		for i, x := range rec.verts {
			if x == v {
				idx = i
				break
			}
		}
		facet := without(rec.verts, idx)
		link = append(link, facetBoundary{
			verts:   facet,
			outside: rec.neighbors[idx],
			mirror:  rec.mirror[idx],
		})
		if !haveRef {
			for _, x := range facet {
				if x != kernel.InfiniteVertexID {
					ref = x
					haveRef = true
					break
				}
			}
		}
	}
	if !haveRef {
		ref = kernel.InfiniteVertexID
	}

	for cellID := range starSet {
		delete(c.cells, cellID)
	}

	if _, err := c.retriangulateCavity(link, ref); err != nil {
		return err
	}

	delete(c.points, v)
	delete(c.vertexCell, v)
	c.repairVertexCells()
	return nil
}
