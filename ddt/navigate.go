package ddt

import (
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/tile"
)

type tileHandle struct {
	t *tile.Triangulation
}

func (d *Distributed) tileOrErr(idx label.Index) (*tileHandle, error) {
	slot, ok := d.Container.Find(idx)
	if !ok {
		return nil, ErrUnknownTile
	}
	if !slot.InMemory {
		var err error
		slot, err = d.Container.Load(idx)
		if err != nil {
			return nil, err
		}
	}
	return &tileHandle{slot.Tile}, nil
}

// PointOf returns the coordinates of a vertex.
func (d *Distributed) PointOf(v VertexRef) (point.Point, error) {
	th, err := d.tileOrErr(v.Tile)
	if err != nil {
		return nil, err
	}
	return th.t.Complex.PointOf(v.Vertex)
}

// MainTileOfVertex returns the tile holding v's canonical representative:
// always its own label (vertex main tile is id(v) itself).
func (d *Distributed) MainTileOfVertex(v VertexRef) label.Index {
	th, err := d.tileOrErr(v.Tile)
	if err != nil {
		return v.Tile
	}
	return th.t.LabelOf(v.Vertex)
}

// MainTileOfCell returns the median-label owner of c's finite vertices.
func (d *Distributed) MainTileOfCell(c CellRef) (label.Index, error) {
	th, err := d.tileOrErr(c.Tile)
	if err != nil {
		return 0, err
	}
	verts, err := th.t.Complex.CellVertices(c.Cell)
	if err != nil {
		return 0, err
	}
	var labels []label.Index
	for _, v := range verts {
		if th.t.Complex.IsInfiniteVertex(v) {
			continue
		}
		labels = append(labels, th.t.LabelOf(v))
	}
	if len(labels) == 0 {
		return 0, ErrRelocationFailed
	}
	return label.Median(labels), nil
}

// RelocateCell finds c's representative inside tile target, following
// spec.md's "relocate to the main copy first" rule for cross-tile
// navigation.
func (d *Distributed) RelocateCell(c CellRef, target label.Index) (CellRef, error) {
	srcTile, err := d.tileOrErr(c.Tile)
	if err != nil {
		return CellRef{}, err
	}
	dstTile, err := d.tileOrErr(target)
	if err != nil {
		return CellRef{}, err
	}
	relocated, err := srcTile.t.RelocateCell(c.Cell, dstTile.t)
	if err != nil {
		return CellRef{}, ErrRelocationFailed
	}
	return CellRef{Tile: target, Cell: relocated}, nil
}

// VertexOf returns vertex index i of cell c.
func (d *Distributed) VertexOf(c CellRef, i int) (VertexRef, error) {
	th, err := d.tileOrErr(c.Tile)
	if err != nil {
		return VertexRef{}, err
	}
	verts, err := th.t.Complex.CellVertices(c.Cell)
	if err != nil {
		return VertexRef{}, err
	}
	if i < 0 || i >= len(verts) {
		return VertexRef{}, ErrRelocationFailed
	}
	return VertexRef{Tile: c.Tile, Vertex: verts[i]}, nil
}

// FacetOf returns the facet opposite vertex index i of c.
func (d *Distributed) FacetOf(c CellRef, i int) FacetRef {
	return FacetRef{Tile: c.Tile, Cell: c.Cell, Index: i}
}

// Neighbor returns the cell sharing the facet opposite vertex index i of
// c, read from c's own tile. It does not relocate to c's main
// representative first: i indexes c's vertices in c's own tile, and the
// result is a cell of that same tile.
func (d *Distributed) Neighbor(c CellRef, i int) (CellRef, error) {
	th, err := d.tileOrErr(c.Tile)
	if err != nil {
		return CellRef{}, err
	}
	n, err := th.t.Complex.CellNeighbor(c.Cell, i)
	if err != nil {
		return CellRef{}, err
	}
	return CellRef{Tile: c.Tile, Cell: n}, nil
}

// MirrorFacet returns the facet, within its neighboring cell, that is the
// mirror of f.
func (d *Distributed) MirrorFacet(f FacetRef) (FacetRef, error) {
	th, err := d.tileOrErr(f.Tile)
	if err != nil {
		return FacetRef{}, err
	}
	n, err := th.t.Complex.CellNeighbor(f.Cell, f.Index)
	if err != nil {
		return FacetRef{}, err
	}
	mirror, err := th.t.Complex.MirrorIndex(f.Cell, f.Index)
	if err != nil {
		return FacetRef{}, err
	}
	return FacetRef{Tile: f.Tile, Cell: n, Index: mirror}, nil
}

// Cell returns the cell a facet belongs to.
func (d *Distributed) Cell(f FacetRef) CellRef {
	return CellRef{Tile: f.Tile, Cell: f.Cell}
}
