package messaging_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/messaging"
	"github.com/ddt-go/ddt/point"
)

func TestSendOneDedups(t *testing.T) {
	h := messaging.New()
	it := messaging.Item{P: point.Point{1, 2}, Label: 0}

	n1 := h.SendOne(0, map[label.Index][]messaging.Item{1: {it}})
	require.Equal(t, 1, n1)

	n2 := h.SendOne(0, map[label.Index][]messaging.Item{1: {it}})
	require.Equal(t, 0, n2)

	got := h.Inbox(1)
	require.Len(t, got, 1)
	require.Empty(t, h.Inbox(1))
}

func TestBroadcastCursorPerTile(t *testing.T) {
	h := messaging.New()
	h.SendAll([]messaging.Item{{P: point.Point{0, 0}, Label: 0}})

	got0 := h.BroadcastCursor(0)
	require.Len(t, got0, 1)
	require.Empty(t, h.BroadcastCursor(0))

	got1 := h.BroadcastCursor(1)
	require.Len(t, got1, 1)
}

func TestPending(t *testing.T) {
	h := messaging.New()
	tiles := []label.Index{0, 1}
	require.False(t, h.Pending(tiles))

	h.SendAll([]messaging.Item{{P: point.Point{0, 0}, Label: 0}})
	require.True(t, h.Pending(tiles))

	h.BroadcastCursor(0)
	h.BroadcastCursor(1)
	require.False(t, h.Pending(tiles))
}
