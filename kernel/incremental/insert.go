package incremental

import (
	"sort"

	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/point"
)

// InsertPoint inserts p and returns the vertex now holding it plus whether a
// new vertex was created (false means p already had a vertex at that exact
// location). Before D+1 finite points exist the complex has no cells yet
// (the kernel's bootstrap phase); the (D+1)-th insertion builds the initial
// finite simplex plus its ring of infinite cells in one step. Every
// insertion after that runs the classic Bowyer-Watson cavity
// retriangulation on top of retriangulateCavity.
func (c *Complex) InsertPoint(p point.Point, hint kernel.CellID) (kernel.VertexID, bool, error) {
	if len(p) != c.dim {
		return 0, false, kernel.ErrBadDimension
	}
	for v, q := range c.points {
		if point.Equal(q, p, 0) {
			return v, false, nil
		}
	}

	id := c.nextVertex
	c.nextVertex++
	c.points[id] = p.Clone()
	if c.hasBbox {
		c.bbox = c.bbox.Extend(p)
	} else {
		c.bbox = point.NewBbox(p)
		c.hasBbox = true
	}

	if len(c.cells) == 0 {
		if len(c.points) < c.dim+1 {
			return id, true, nil
		}
		if err := c.bootstrap(); err != nil {
			return id, true, err
		}
		return id, true, nil
	}

	if err := c.bowyerWatsonInsert(id, p, hint); err != nil {
		return id, true, err
	}
	return id, true, nil
}

// bootstrap builds the initial D+1-vertex finite cell plus its D+1 infinite
// cells once exactly D+1 finite points have accumulated.
func (c *Complex) bootstrap() error {
	ids := make([]kernel.VertexID, 0, c.dim+1)
	for v := range c.points {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	pts, err := c.pointsOf(ids)
	if err != nil {
		return err
	}
	sign, err := orientSign(pts)
	if err != nil {
		return err // collinear/coplanar: genuinely degenerate bootstrap set
	}
	if sign < 0 {
		ids[len(ids)-1], ids[len(ids)-2] = ids[len(ids)-2], ids[len(ids)-1]
	}

	finiteID := c.nextCell
	c.nextCell++
	finiteRec := &cellRecord{
		verts:     append([]kernel.VertexID(nil), ids...),
		neighbors: make([]kernel.CellID, len(ids)),
		mirror:    make([]int, len(ids)),
	}
	c.cells[finiteID] = finiteRec
	for _, v := range ids {
		c.vertexCell[v] = finiteID
	}

	infIDs := make([]kernel.CellID, len(ids))
	for i := range ids {
		verts := append([]kernel.VertexID(nil), ids...)
		verts[i] = kernel.InfiniteVertexID
		cid := c.nextCell
		c.nextCell++
		c.cells[cid] = &cellRecord{
			verts:     verts,
			neighbors: make([]kernel.CellID, len(ids)),
			mirror:    make([]int, len(ids)),
		}
		infIDs[i] = cid
		c.vertexCell[kernel.InfiniteVertexID] = cid
	}

	for i := range ids {
		finiteRec.neighbors[i] = infIDs[i]
		finiteRec.mirror[i] = i
		infRec := c.cells[infIDs[i]]
		infRec.neighbors[i] = finiteID
		infRec.mirror[i] = i
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			ri := c.cells[infIDs[i]]
			rj := c.cells[infIDs[j]]
			ri.neighbors[j] = infIDs[j]
			ri.mirror[j] = i
			rj.neighbors[i] = infIDs[i]
			rj.mirror[i] = j
		}
	}
	return nil
}

// inConflict reports whether cell id's circumsphere (or, for an infinite
// cell, its wedge of the exterior) contains p.
func (c *Complex) inConflict(id kernel.CellID, p point.Point) (bool, error) {
	rec := c.cells[id]
	infIdx := -1
	for i, v := range rec.verts {
		if v == kernel.InfiniteVertexID {
			infIdx = i
			break
		}
	}
	if infIdx < 0 {
		pts, err := c.pointsOf(rec.verts)
		if err != nil {
			return false, err
		}
		s, err := inSphereSign(append(pts, p))
		if err != nil {
			return false, nil // degenerate: conservatively not in conflict
		}
		// inSphereSign is relative to the cell's orientation, and cavity
		// retriangulation leaves cells in either orientation.
		o, err := orientSign(pts)
		if err != nil {
			return false, nil
		}
		return s*o > 0, nil
	}

	finiteFacet := without(rec.verts, infIdx)
	facetPts, err := c.pointsOf(finiteFacet)
	if err != nil {
		return false, err
	}
	neighborID := rec.neighbors[infIdx]
	neighborMirror := rec.mirror[infIdx]
	apex := c.cells[neighborID].verts[neighborMirror]
	apexPt, err := c.PointOf(apex)
	if err != nil {
		return false, err
	}
	sIn, errIn := orientSign(append(append([]point.Point(nil), facetPts...), apexPt))
	sP, errP := orientSign(append(append([]point.Point(nil), facetPts...), p))
	if errIn != nil || errP != nil {
		return false, nil
	}
	return sP != sIn, nil
}

// bowyerWatsonInsert locates the conflict region for p, removes it, and
// cones the resulting cavity from the new vertex id.
func (c *Complex) bowyerWatsonInsert(id kernel.VertexID, p point.Point, hint kernel.CellID) error {
	loc, err := c.Locate(p, hint)
	if err != nil {
		return err
	}

	seen := map[kernel.CellID]bool{loc: true}
	queue := []kernel.CellID{loc}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		rec := c.cells[cur]
		for _, n := range rec.neighbors {
			if n == kernel.NoCell || seen[n] {
				continue
			}
			conflict, _ := c.inConflict(n, p)
			if conflict {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	var boundary []facetBoundary
	for cellID := range seen {
		rec := c.cells[cellID]
		for i, n := range rec.neighbors {
			if !seen[n] {
				boundary = append(boundary, facetBoundary{
					verts:   without(rec.verts, i),
					outside: n,
					mirror:  rec.mirror[i],
				})
			}
		}
	}

	for cellID := range seen {
		delete(c.cells, cellID)
	}

	if _, err := c.retriangulateCavity(boundary, id); err != nil {
		return err
	}

	c.repairVertexCells()
	return nil
}

// repairVertexCells re-points any vertex whose cached incident cell was
// deleted during a cavity retriangulation. This is a reference kernel, not
// a performance-tuned one: the fallback scan is O(V*cells) in the worst
// case and only runs when a stale pointer is actually found.
func (c *Complex) repairVertexCells() {
	for v, cellID := range c.vertexCell {
		if _, ok := c.cells[cellID]; ok {
			continue
		}
		found := kernel.NoCell
		for nid, nrec := range c.cells {
			if containsVertex(nrec.verts, v) {
				found = nid
				break
			}
		}
		if found != kernel.NoCell {
			c.vertexCell[v] = found
		} else {
			delete(c.vertexCell, v)
		}
	}
}
