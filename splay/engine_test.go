package splay_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/container"
	"github.com/ddt-go/ddt/internal/xlog"
	"github.com/ddt-go/ddt/kernel/incremental"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/messaging"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/scheduler"
	"github.com/ddt-go/ddt/splay"
)

func TestRunInsertsAndFinalizesAllTiles(t *testing.T) {
	k := incremental.New2D()
	c := container.New(4, k, nil)
	hub := messaging.New()
	tiles := []label.Index{0, 1}
	eng := splay.New(tiles, c, hub, scheduler.Sequential{}, xlog.Discard)

	initial := map[label.Index][]point.Point{
		0: {{0, 0}, {4, 0}, {0, 4}},
		1: {{10, 10}, {14, 10}, {10, 14}},
	}

	err := eng.Run(initial)
	require.NoError(t, err)

	for _, idx := range tiles {
		slot, ok := c.Find(idx)
		require.True(t, ok)
		require.NotNil(t, slot.Tile)
		require.True(t, slot.Tile.Complex.NumVertices() >= 3)
	}
}
