package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/partition"
	"github.com/ddt-go/ddt/point"
)

func TestGridAssignsWithinBounds(t *testing.T) {
	bbox := point.Bbox{Lo: point.Point{0, 0}, Hi: point.Point{10, 10}}
	g := partition.NewGrid(bbox, []int{2, 2})

	require.Equal(t, 4, g.NumTiles())
	got := g.Assign(point.Point{1, 1})
	require.True(t, int(got) >= 0 && int(got) < 4)

	got2 := g.Assign(point.Point{9, 9})
	require.True(t, int(got2) >= 0 && int(got2) < 4)
	require.NotEqual(t, got, got2)
}

func TestGridClampsOutOfBounds(t *testing.T) {
	bbox := point.Bbox{Lo: point.Point{0, 0}, Hi: point.Point{10, 10}}
	g := partition.NewGrid(bbox, []int{2, 2})
	require.NotPanics(t, func() { g.Assign(point.Point{-5, 20}) })
}

func TestRandomPointSetProducesNPoints(t *testing.T) {
	bbox := point.Bbox{Lo: point.Point{-1, -1}, Hi: point.Point{1, 1}}
	g := partition.NewGrid(bbox, []int{2, 2})
	src := partition.NewRandomPointSet(10, 2, partition.UniformCoordinateFn(-1, 1), g, 42)

	count := 0
	for {
		p, lbl, ok := src.Next()
		if !ok {
			break
		}
		require.Len(t, p, 2)
		require.True(t, int(lbl) >= 0)
		count++
	}
	require.Equal(t, 10, count)
}
