package ddt_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ddt-go/ddt/container"
	"github.com/ddt-go/ddt/ddt"
	"github.com/ddt-go/ddt/internal/xlog"
	"github.com/ddt-go/ddt/kernel/incremental"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/scheduler"
)

// TestPropertyMainVertexCountMatchesDistinctPoints is P4: the number of
// main vertices across all tiles equals the number of distinct input
// points, after a uniformly random point set is partitioned over a small
// grid and fully splayed.
func TestPropertyMainVertexCountMatchesDistinctPoints(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(4, 40).Draw(rt, "n")
		tiles := rapid.IntRange(1, 3).Draw(rt, "tiles")

		seen := make(map[[2]float64]bool)
		var distinct [][2]float64
		points := make(map[label.Index][]point.Point)
		for i := 0; i < n; i++ {
			x := rapid.Float64Range(-8, 8).Draw(rt, "x")
			y := rapid.Float64Range(-8, 8).Draw(rt, "y")
			key := [2]float64{x, y}
			tileIdx := label.Index(i % tiles)
			points[tileIdx] = append(points[tileIdx], point.Point{x, y})
			if !seen[key] {
				seen[key] = true
				distinct = append(distinct, key)
			}
		}

		k := incremental.New2D()
		c := container.New(8, k, nil)
		d := ddt.New(k, c, scheduler.Sequential{}, xlog.Discard)
		require.NoError(rt, d.InsertSet(points))

		verts, err := d.Vertices()
		require.NoError(rt, err)
		require.Equal(rt, len(distinct), len(verts))
	})
}

// TestPropertyMirrorFacetIsInvolution is P7: mirroring a facet twice
// returns the original facet, for every finite cell's facets in a small
// deterministic triangulation.
func TestPropertyMirrorFacetIsInvolution(t *testing.T) {
	k := incremental.New2D()
	c := container.New(8, k, nil)
	d := ddt.New(k, c, scheduler.Sequential{}, xlog.Discard)

	require.NoError(t, d.InsertSet(map[label.Index][]point.Point{
		0: {{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 2}},
	}))

	cells, err := d.Cells()
	require.NoError(t, err)
	require.NotEmpty(t, cells)

	for _, cell := range cells {
		for i := 0; i < 3; i++ {
			f := d.FacetOf(cell, i)
			mirror, err := d.MirrorFacet(f)
			require.NoError(t, err)
			back, err := d.MirrorFacet(mirror)
			require.NoError(t, err)
			require.Equal(t, f, back)
		}
	}
}

// TestPropertyMainVertexTileIsItsOwnTile checks that every main vertex
// reported by Vertices has its main tile equal to the tile that holds it.
func TestPropertyMainVertexTileIsItsOwnTile(t *testing.T) {
	k := incremental.New2D()
	c := container.New(8, k, nil)
	d := ddt.New(k, c, scheduler.Sequential{}, xlog.Discard)

	require.NoError(t, d.InsertSet(map[label.Index][]point.Point{
		0: {{0, 0}, {4, 0}, {0, 4}},
		1: {{10, 10}, {14, 10}, {10, 14}},
	}))

	verts, err := d.Vertices()
	require.NoError(t, err)
	require.NotEmpty(t, verts)

	for _, v := range verts {
		main := d.MainTileOfVertex(v)
		require.Equal(t, v.Tile, main)
	}
}

// TestPropertyFinalizeIsIdempotent is R3: calling Finalize twice on the
// same tile leaves its reported stats unchanged. It also checks that
// Validate passes and leaves the number of main cells unchanged.
func TestPropertyFinalizeIsIdempotent(t *testing.T) {
	k := incremental.New2D()
	c := container.New(8, k, nil)
	d := ddt.New(k, c, scheduler.Sequential{}, xlog.Discard)

	require.NoError(t, d.InsertSet(map[label.Index][]point.Point{
		0: {{0, 0}, {4, 0}, {0, 4}, {4, 4}},
	}))

	before, err := d.Cells()
	require.NoError(t, err)

	ok, violations := d.Validate(true, 10)
	require.True(t, ok, "%v", violations)

	after, err := d.Cells()
	require.NoError(t, err)
	require.Equal(t, len(before), len(after))

	slot, ok := c.Find(0)
	require.True(t, ok)
	require.NoError(t, slot.Tile.Finalize())
	v1, f1, c1, _ := slot.Tile.Stats()
	require.NoError(t, slot.Tile.Finalize())
	v2, f2, c2, stale := slot.Tile.Stats()
	require.False(t, stale)
	require.Equal(t, []int{v1, f1, c1}, []int{v2, f2, c2})
}
