package ddt

import (
	"github.com/ddt-go/ddt/container"
	"github.com/ddt-go/ddt/label"
)

// withEveryTile calls fn for every known tile's Triangulation, loading it
// into memory first if it was evicted. fn's error stops the walk.
func (d *Distributed) withEveryTile(fn func(idx label.Index, th *tileHandle) error) error {
	// Collect the indices first: Range holds the container's mutex, and
	// tileOrErr calls back into the Container.
	var indices []label.Index
	d.Container.Range(func(idx label.Index, _ *container.Slot) bool {
		indices = append(indices, idx)
		return true
	})
	for _, idx := range indices {
		th, err := d.tileOrErr(idx)
		if err != nil {
			return err
		}
		if err := fn(idx, th); err != nil {
			return err
		}
	}
	return nil
}

// Vertices returns every main vertex representative across all tiles (one
// entry per global vertex: a vertex's main tile is always its own label,
// so this is just every finite vertex, deduplicated by construction).
func (d *Distributed) Vertices() ([]VertexRef, error) {
	var out []VertexRef
	err := d.withEveryTile(func(idx label.Index, th *tileHandle) error {
		for _, v := range th.t.Complex.VertexIDs() {
			if th.t.VertexIsMain(v) {
				out = append(out, VertexRef{Tile: idx, Vertex: v})
			}
		}
		return nil
	})
	return out, err
}

// Cells returns every main cell representative across all tiles.
func (d *Distributed) Cells() ([]CellRef, error) {
	var out []CellRef
	err := d.withEveryTile(func(idx label.Index, th *tileHandle) error {
		for _, c := range th.t.Complex.CellIDs() {
			if th.t.Complex.IsInfiniteCell(c) {
				continue
			}
			main, err := th.t.CellIsMain(c)
			if err != nil {
				return err
			}
			if main {
				out = append(out, CellRef{Tile: idx, Cell: c})
			}
		}
		return nil
	})
	return out, err
}

// TileVertices returns every vertex (local or foreign) stored in one
// tile's own complex, for writers that need a self-contained per-tile
// view (io/vtu, io/vrt) rather than the deduplicated global Vertices.
func (d *Distributed) TileVertices(idx label.Index) ([]VertexRef, error) {
	th, err := d.tileOrErr(idx)
	if err != nil {
		return nil, err
	}
	var out []VertexRef
	for _, v := range th.t.Complex.VertexIDs() {
		out = append(out, VertexRef{Tile: idx, Vertex: v})
	}
	return out, nil
}

// TileCells returns every finite cell stored in one tile's own complex.
func (d *Distributed) TileCells(idx label.Index) ([]CellRef, error) {
	th, err := d.tileOrErr(idx)
	if err != nil {
		return nil, err
	}
	var out []CellRef
	for _, c := range th.t.Complex.CellIDs() {
		if th.t.Complex.IsInfiniteCell(c) {
			continue
		}
		out = append(out, CellRef{Tile: idx, Cell: c})
	}
	return out, nil
}

// Facets returns every main facet representative across all tiles.
func (d *Distributed) Facets() ([]FacetRef, error) {
	var out []FacetRef
	err := d.withEveryTile(func(idx label.Index, th *tileHandle) error {
		for _, c := range th.t.Complex.CellIDs() {
			if th.t.Complex.IsInfiniteCell(c) {
				continue
			}
			verts, err := th.t.Complex.CellVertices(c)
			if err != nil {
				return err
			}
			for i := range verts {
				main, err := th.t.FacetIsMain(c, i)
				if err != nil {
					return err
				}
				if main {
					out = append(out, FacetRef{Tile: idx, Cell: c, Index: i})
				}
			}
		}
		return nil
	})
	return out, err
}
