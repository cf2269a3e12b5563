package container_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/container"
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/kernel/incremental"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/serialize/filestore"
)

func TestTryEmplaceCreatesFreshTile(t *testing.T) {
	store := filestore.NewStore(filepath.Join(t.TempDir(), "tile-"))
	c := container.New(2, incremental.New2D(), store)

	slot, err := c.TryEmplace(0)
	require.NoError(t, err)
	require.True(t, slot.InMemory)
	require.NotNil(t, slot.Tile)
	require.Equal(t, label.Index(0), slot.Tile.ID)
}

func TestEvictionOnCapacity(t *testing.T) {
	store := filestore.NewStore(filepath.Join(t.TempDir(), "tile-"))
	c := container.New(1, incremental.New2D(), store)

	s0, err := c.TryEmplace(0)
	require.NoError(t, err)
	_, _, err = s0.Tile.Insert(point.Point{0, 0}, 0, kernel.NoCell)
	require.NoError(t, err)

	s1, err := c.TryEmplace(1)
	require.NoError(t, err)
	require.True(t, s1.InMemory)

	got0, ok := c.Find(0)
	require.True(t, ok)
	require.False(t, got0.InMemory)
}

func TestEvictedTileReloadsOnDemand(t *testing.T) {
	store := filestore.NewStore(filepath.Join(t.TempDir(), "tile-"))
	c := container.New(1, incremental.New2D(), store)

	s0, err := c.TryEmplace(0)
	require.NoError(t, err)
	_, _, err = s0.Tile.Insert(point.Point{1, 1}, 0, kernel.NoCell)
	require.NoError(t, err)

	_, err = c.TryEmplace(1) // forces eviction of tile 0
	require.NoError(t, err)

	reloaded, err := c.Load(0)
	require.NoError(t, err)
	require.True(t, reloaded.InMemory)
	require.Equal(t, 1, reloaded.Tile.Complex.NumVertices())
}

func TestEraseUnknownReturnsErr(t *testing.T) {
	c := container.New(2, incremental.New2D(), nil)
	require.Error(t, c.Erase(5))
}

func TestRangeVisitsAllSlots(t *testing.T) {
	store := filestore.NewStore(filepath.Join(t.TempDir(), "tile-"))
	c := container.New(3, incremental.New2D(), store)
	_, err := c.TryEmplace(0)
	require.NoError(t, err)
	_, err = c.TryEmplace(1)
	require.NoError(t, err)

	seen := map[label.Index]bool{}
	c.Range(func(idx label.Index, s *container.Slot) bool {
		seen[idx] = true
		return true
	})
	require.True(t, seen[0])
	require.True(t, seen[1])
}
