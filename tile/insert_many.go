package tile

import (
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/messaging"
)

// InsertMany inserts received items in the order given (they are not
// spatially sorted before insertion), threading the previous insertion's
// cell as the next locate hint. The resulting vertices are then visited in
// SpatialSort order: one whose entire star is already foreign carries no
// information this tile needs and is simplified away. When
// reportMixedOnly is set, the returned set is narrowed to vertices whose
// star touches at least one local vertex (the ones splaying actually
// needs to chase further).
func (t *Triangulation) InsertMany(received []messaging.Item, reportMixedOnly bool) ([]kernel.VertexID, int, error) {
	if len(received) == 0 {
		return nil, 0, nil
	}

	ids := make([]kernel.VertexID, len(received))
	hint := kernel.NoCell
	for i, it := range received {
		v, created, err := t.Insert(it.P, it.Label, hint)
		if err != nil {
			return nil, 0, err
		}
		ids[i] = v
		if created {
			cells, err := t.Complex.IncidentCells(v)
			if err == nil && len(cells) > 0 {
				hint = cells[0]
			}
		}
	}

	sorted := t.Complex.SpatialSort(ids)

	var newlyInserted []kernel.VertexID
	count := 0
	for _, v := range sorted {
		simplified, err := t.Simplify(v)
		if err != nil {
			return nil, 0, err
		}
		if simplified {
			continue
		}
		count++
		if reportMixedOnly {
			touchesLocal, err := t.starTouchesLocal(v)
			if err != nil {
				return nil, 0, err
			}
			if !touchesLocal {
				continue
			}
		}
		newlyInserted = append(newlyInserted, v)
	}
	return newlyInserted, count, nil
}

func (t *Triangulation) starTouchesLocal(v kernel.VertexID) (bool, error) {
	adj, err := t.Complex.AdjacentVertices(v)
	if err != nil {
		return false, err
	}
	for _, u := range adj {
		if t.VertexIsLocal(u) {
			return true, nil
		}
	}
	return false, nil
}
