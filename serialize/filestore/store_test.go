package filestore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/kernel/incremental"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/serialize/filestore"
	"github.com/ddt-go/ddt/tile"
)

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "tile-")
	store := filestore.NewStore(prefix)

	src := tile.New(3, incremental.New2D())
	for _, p := range []point.Point{{0, 0}, {4, 0}, {0, 4}, {2, 2}} {
		_, _, err := src.Insert(p, 3, kernel.NoCell)
		require.NoError(t, err)
	}

	saved, err := store.Save(src)
	require.NoError(t, err)
	require.True(t, saved)
	require.True(t, store.HasTile(3))

	dst := tile.New(3, incremental.New2D())
	loaded, err := store.Load(dst)
	require.NoError(t, err)
	require.True(t, loaded)
	require.Equal(t, src.Complex.NumVertices(), dst.Complex.NumVertices())
}

func TestSaveEmptyTileReturnsFalse(t *testing.T) {
	store := filestore.NewStore(filepath.Join(t.TempDir(), "tile-"))
	empty := tile.New(0, incremental.New2D())
	saved, err := store.Save(empty)
	require.NoError(t, err)
	require.False(t, saved)
}

func TestLoadUnknownTileReturnsFalse(t *testing.T) {
	store := filestore.NewStore(filepath.Join(t.TempDir(), "tile-"))
	dst := tile.New(9, incremental.New2D())
	loaded, err := store.Load(dst)
	require.NoError(t, err)
	require.False(t, loaded)
}

func TestIndexPersistsAcrossNewStore(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "tile-")
	store1 := filestore.NewStore(prefix)
	src := tile.New(1, incremental.New2D())
	for _, p := range []point.Point{{0, 0}, {1, 0}, {0, 1}} {
		_, _, err := src.Insert(p, 1, kernel.NoCell)
		require.NoError(t, err)
	}
	_, err := store1.Save(src)
	require.NoError(t, err)

	store2 := filestore.NewStore(prefix)
	require.True(t, store2.HasTile(1))
}
