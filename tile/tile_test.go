package tile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/kernel/incremental"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/tile"
)

func build(t *testing.T) *tile.Triangulation {
	tr := tile.New(0, incremental.New2D())
	pts := []point.Point{{0, 0}, {4, 0}, {0, 4}, {4, 4}, {2, 2}}
	for _, p := range pts {
		_, _, err := tr.Insert(p, 0, kernel.NoCell)
		require.NoError(t, err)
	}
	return tr
}

func TestVertexLocality(t *testing.T) {
	tr := build(t)
	for _, v := range tr.Complex.VertexIDs() {
		require.True(t, tr.VertexIsLocal(v))
		require.False(t, tr.VertexIsForeign(v))
		require.True(t, tr.VertexIsMain(v))
	}
}

func TestFinalizeCountsAllLocal(t *testing.T) {
	tr := build(t)
	require.NoError(t, tr.Finalize())
	mv, mf, mc, stale := tr.Stats()
	require.False(t, stale)
	require.Equal(t, 5, mv)
	require.True(t, mc > 0)
	require.True(t, mf > 0)
}

func TestAxisExtremePoints(t *testing.T) {
	tr := build(t)
	ext, err := tr.AxisExtremePoints()
	require.NoError(t, err)
	require.NotEmpty(t, ext)
	require.True(t, len(ext) <= 4)
}

func TestSimplifyRemovesIsolatedForeignVertex(t *testing.T) {
	tr := build(t)
	// A foreign cluster away from the local square: v lies inside it, so
	// every finite neighbor of v is foreign.
	for _, p := range []point.Point{{20, 20}, {24, 20}, {20, 24}, {24.5, 24.2}} {
		_, _, err := tr.Insert(p, 1, kernel.NoCell)
		require.NoError(t, err)
	}
	v, _, err := tr.Insert(point.Point{22, 21.9}, 1, kernel.NoCell)
	require.NoError(t, err)

	removed, err := tr.Simplify(v)
	require.NoError(t, err)
	require.True(t, removed)

	_, err = tr.Complex.PointOf(v)
	require.Error(t, err)
}

func TestRelocateVertexFindsSamePoint(t *testing.T) {
	a := tile.New(0, incremental.New2D())
	b := tile.New(1, incremental.New2D())
	p := point.Point{1, 1}
	va, _, err := a.Insert(p, 0, kernel.NoCell)
	require.NoError(t, err)
	vb, _, err := b.Insert(p, 1, kernel.NoCell)
	require.NoError(t, err)

	got, err := a.RelocateVertex(va, b)
	require.NoError(t, err)
	require.Equal(t, vb, got)
}

func TestMedianRuleAgreesWithLabelPackage(t *testing.T) {
	tr := tile.New(1, incremental.New2D())
	for i, p := range []point.Point{{0, 0}, {4, 0}, {0, 4}} {
		_, _, err := tr.Insert(p, label.Index(i), kernel.NoCell)
		require.NoError(t, err)
	}
	cells := tr.Complex.CellIDs()
	require.NotEmpty(t, cells)
	// labels {0,1,2}: median index 1 == this tile's ID.
	for _, c := range cells {
		if tr.Complex.IsInfiniteCell(c) {
			continue
		}
		main, err := tr.CellIsMain(c)
		require.NoError(t, err)
		require.True(t, main)
	}
}
