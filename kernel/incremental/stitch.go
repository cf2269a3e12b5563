package incremental

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ddt-go/ddt/kernel"
)

// facetKey returns a canonical, order-independent key for a facet's vertex
// set, used to match facets of newly created cells against each other and
// against the recorded outer boundary during cavity retriangulation.
func facetKey(verts []kernel.VertexID) string {
	sorted := make([]int, len(verts))
	for i, v := range verts {
		sorted[i] = int(v)
	}
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// retriangulateCavity replaces the cells bounded by boundary with one new
// cell per boundary facet that does not already contain apex, cone-ing that
// facet with apex. Boundary facets that do contain apex are not cone'd
// directly; they coincide with an internal facet of one of the newly
// created cells and are matched during stitching below.
//
// This single helper implements both Bowyer-Watson insertion (apex is the
// freshly created vertex for the inserted point, boundary is the star-shaped
// conflict region's facets) and vertex removal (apex is a chosen vertex of
// v's link, boundary is the facets of v's star opposite v) — both are a
// "cone a star-shaped cavity from one apex" operation.
func (c *Complex) retriangulateCavity(boundary []facetBoundary, apex kernel.VertexID) ([]kernel.CellID, error) {
	type newCell struct {
		id   kernel.CellID
		rec  *cellRecord
		keys []string // facetKey of each of its D+1 facets, aligned with rec.verts index
	}

	outerByKey := make(map[string]facetBoundary, len(boundary))
	for _, f := range boundary {
		outerByKey[facetKey(f.verts)] = f
	}

	created := make([]newCell, 0, len(boundary))
	for _, f := range boundary {
		if containsVertex(f.verts, apex) {
			continue // coincides with another new cell's internal facet
		}
		verts := append(append([]kernel.VertexID(nil), f.verts...), apex)
		rec := &cellRecord{
			verts:     verts,
			neighbors: make([]kernel.CellID, len(verts)),
			mirror:    make([]int, len(verts)),
		}
		for i := range rec.neighbors {
			rec.neighbors[i] = kernel.NoCell
			rec.mirror[i] = -1
		}
		id := c.nextCell
		c.nextCell++
		keys := make([]string, len(verts))
		for i := range verts {
			keys[i] = facetKey(without(verts, i))
		}
		created = append(created, newCell{id: id, rec: rec, keys: keys})
	}

	if len(created) == 0 {
		return nil, fmt.Errorf("incremental: empty cavity retriangulation")
	}

	// Stitch: match every facet of every new cell either against another
	// new cell's matching facet, or against the recorded outer boundary.
	byKey := make(map[string][]int) // key -> indices into created, occurrence order
	for ci, nc := range created {
		for fi, k := range nc.keys {
			byKey[k] = append(byKey[k], ci*1000+fi) // encode (cell index, facet index)
		}
	}
	for k, occ := range byKey {
		switch len(occ) {
		case 1:
			ci, fi := occ[0]/1000, occ[0]%1000
			outer, ok := outerByKey[k]
			if !ok {
				return nil, fmt.Errorf("incremental: unmatched cavity facet")
			}
			created[ci].rec.neighbors[fi] = outer.outside
			created[ci].rec.mirror[fi] = outer.mirror
			if outer.outside != kernel.NoCell {
				outRec := c.cells[outer.outside]
				outRec.neighbors[outer.mirror] = created[ci].id
				outRec.mirror[outer.mirror] = fi
			}
		case 2:
			ci1, fi1 := occ[0]/1000, occ[0]%1000
			ci2, fi2 := occ[1]/1000, occ[1]%1000
			created[ci1].rec.neighbors[fi1] = created[ci2].id
			created[ci1].rec.mirror[fi1] = fi2
			created[ci2].rec.neighbors[fi2] = created[ci1].id
			created[ci2].rec.mirror[fi2] = fi1
		default:
			return nil, fmt.Errorf("incremental: facet %q matched by %d cells", k, len(occ))
		}
	}

	ids := make([]kernel.CellID, 0, len(created))
	for _, nc := range created {
		c.cells[nc.id] = nc.rec
		for _, v := range nc.rec.verts {
			c.vertexCell[v] = nc.id
		}
		ids = append(ids, nc.id)
	}
	return ids, nil
}

func containsVertex(verts []kernel.VertexID, v kernel.VertexID) bool {
	for _, x := range verts {
		if x == v {
			return true
		}
	}
	return false
}

// without returns verts with the element at index i removed.
func without(verts []kernel.VertexID, i int) []kernel.VertexID {
	out := make([]kernel.VertexID, 0, len(verts)-1)
	for j, v := range verts {
		if j != i {
			out = append(out, v)
		}
	}
	return out
}
