package tile_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/kernel/incremental"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/tile"
)

// TestPropertyFinalizeNeverOvercounts checks a weak form of P3/P5: a
// tile's main vertex/cell counts from Finalize never exceed its total
// vertex/cell counts (cells finite and infinite), for arbitrary random point sets all labeled
// to this one tile (an all-local tile: everything in it is main).
func TestPropertyFinalizeNeverOvercounts(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(3, 30).Draw(rt, "n")

		k := incremental.New2D()
		tr := tile.New(0, k)
		for i := 0; i < n; i++ {
			x := rapid.Float64Range(-10, 10).Draw(rt, "x")
			y := rapid.Float64Range(-10, 10).Draw(rt, "y")
			_, _, err := tr.Insert(point.Point{x, y}, 0, kernel.NoCell)
			require.NoError(rt, err)
		}

		require.NoError(rt, tr.Finalize())
		mainVerts, mainFacets, mainCells, stale := tr.Stats()
		require.False(rt, stale)
		require.True(rt, mainVerts <= tr.Complex.NumVertices())
		require.True(rt, mainCells <= tr.Complex.NumCells())
		require.True(rt, mainFacets >= 0)

		// Every vertex is local and this is the only tile, so every
		// vertex, cell, and facet is necessarily main (P3's "exactly
		// one owner" degenerates to "this tile" when there is only one).
		require.Equal(rt, tr.Complex.NumVertices(), mainVerts)
	})
}

// TestPropertyAxisExtremePointsAreLocalVertices checks that every point
// AxisExtremePoints returns actually names a current local vertex of the
// tile it was computed from.
func TestPropertyAxisExtremePointsAreLocalVertices(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(3, 20).Draw(rt, "n")

		k := incremental.New2D()
		tr := tile.New(0, k)
		for i := 0; i < n; i++ {
			x := rapid.Float64Range(-10, 10).Draw(rt, "x")
			y := rapid.Float64Range(-10, 10).Draw(rt, "y")
			_, _, err := tr.Insert(point.Point{x, y}, 0, kernel.NoCell)
			require.NoError(rt, err)
		}

		extremes, err := tr.AxisExtremePoints()
		require.NoError(rt, err)
		locals := make(map[kernel.VertexID]bool)
		for _, v := range tr.Complex.VertexIDs() {
			locals[v] = true
		}
		for _, v := range extremes {
			require.True(rt, locals[v])
		}
	})
}
