package incremental_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/kernel/incremental"
	"github.com/ddt-go/ddt/point"
)

func TestBootstrapAndInsert(t *testing.T) {
	k := incremental.New2D()
	require.Equal(t, 2, k.Dimension())

	cx := k.NewComplex()
	pts := []point.Point{{0, 0}, {4, 0}, {0, 4}, {1, 1}}

	var ids []kernel.VertexID
	for _, p := range pts {
		id, created, err := cx.InsertPoint(p, kernel.NoCell)
		require.NoError(t, err)
		require.True(t, created)
		ids = append(ids, id)
	}

	require.Equal(t, len(pts), cx.NumVertices())
	require.True(t, cx.NumCells() > 0)

	for _, id := range ids {
		got, err := cx.PointOf(id)
		require.NoError(t, err)
		require.NotNil(t, got)
	}
}

func TestInsertDuplicateReturnsSameVertex(t *testing.T) {
	k := incremental.New2D()
	cx := k.NewComplex()
	var orig kernel.VertexID
	for _, p := range []point.Point{{0, 0}, {4, 0}, {0, 4}, {1, 1}} {
		id, _, err := cx.InsertPoint(p, kernel.NoCell)
		require.NoError(t, err)
		orig = id
	}

	id1, created1, err := cx.InsertPoint(point.Point{1, 1}, kernel.NoCell)
	require.NoError(t, err)
	require.False(t, created1)
	require.Equal(t, orig, id1)

	id2, created2, err := cx.InsertPoint(point.Point{2, 2}, kernel.NoCell)
	require.NoError(t, err)
	require.True(t, created2)
	require.NotEqual(t, id1, id2)
}

func TestEveryCellHasDPlusOneVertices(t *testing.T) {
	k := incremental.New2D()
	cx := k.NewComplex()
	for _, p := range []point.Point{{0, 0}, {4, 0}, {0, 4}, {4, 4}, {2, 2}, {1, 3}} {
		_, _, err := cx.InsertPoint(p, kernel.NoCell)
		require.NoError(t, err)
	}

	for _, id := range cx.CellIDs() {
		verts, err := cx.CellVertices(id)
		require.NoError(t, err)
		require.Len(t, verts, 3)
	}
}

func TestNeighborsAreMutuallyConsistent(t *testing.T) {
	k := incremental.New2D()
	cx := k.NewComplex()
	for _, p := range []point.Point{{0, 0}, {4, 0}, {0, 4}, {4, 4}, {2, 2}} {
		_, _, err := cx.InsertPoint(p, kernel.NoCell)
		require.NoError(t, err)
	}

	for _, id := range cx.CellIDs() {
		verts, err := cx.CellVertices(id)
		require.NoError(t, err)
		for i := range verts {
			n, err := cx.CellNeighbor(id, i)
			require.NoError(t, err)
			require.NotEqual(t, kernel.NoCell, n)

			mirror, err := cx.MirrorIndex(id, i)
			require.NoError(t, err)

			back, err := cx.CellNeighbor(n, mirror)
			require.NoError(t, err)
			require.Equal(t, id, back)
		}
	}
}

func TestRemovePreservesOtherVertexIDs(t *testing.T) {
	k := incremental.New2D()
	cx := k.NewComplex()
	var ids []kernel.VertexID
	for _, p := range []point.Point{{0, 0}, {4, 0}, {0, 4}, {4, 4}, {2, 2}} {
		id, _, err := cx.InsertPoint(p, kernel.NoCell)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	toRemove := ids[len(ids)-1]
	require.NoError(t, cx.Remove(toRemove))
	require.Equal(t, len(ids)-1, cx.NumVertices())

	for _, id := range ids[:len(ids)-1] {
		_, err := cx.PointOf(id)
		require.NoError(t, err)
	}
	_, err := cx.PointOf(toRemove)
	require.Error(t, err)
}

func TestLocateReturnsCellForInteriorPoint(t *testing.T) {
	k := incremental.New2D()
	cx := k.NewComplex()
	for _, p := range []point.Point{{0, 0}, {10, 0}, {0, 10}, {10, 10}} {
		_, _, err := cx.InsertPoint(p, kernel.NoCell)
		require.NoError(t, err)
	}

	cellID, err := cx.Locate(point.Point{5, 5}, kernel.NoCell)
	require.NoError(t, err)
	require.NotEqual(t, kernel.NoCell, cellID)
}
