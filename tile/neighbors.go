package tile

import (
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/label"
)

// FiniteNeighbors reports, for every vertex v in inserted and every other
// finite neighbor w it has in this tile's complex, both message
// directions a newly-inserted pair can require: (idw, v) so w's home
// tile learns about v, and (idv, w) so v's home tile learns about w.
// Either direction is only emitted when the destination differs from
// this tile, since this tile already knows about both of its own points.
func (t *Triangulation) FiniteNeighbors(inserted []kernel.VertexID) ([]NeighborMsg, error) {
	type key struct {
		to label.Index
		v  kernel.VertexID
	}
	var out []NeighborMsg
	sent := make(map[key]bool)
	emit := func(to label.Index, v kernel.VertexID) {
		k := key{to, v}
		if sent[k] {
			return
		}
		sent[k] = true
		out = append(out, NeighborMsg{To: to, Vertex: v})
	}

	for _, v := range inserted {
		idv := t.labelOf(v)
		adj, err := t.Complex.AdjacentVertices(v)
		if err != nil {
			return nil, err
		}
		for _, w := range adj {
			if t.Complex.IsInfiniteVertex(w) {
				continue
			}
			idw := t.labelOf(w)
			if idw == idv {
				continue
			}
			if idw != t.ID {
				emit(idw, v)
			}
			if idv != t.ID {
				emit(idv, w)
			}
		}
	}
	return out, nil
}
