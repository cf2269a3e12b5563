package ddt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/container"
	"github.com/ddt-go/ddt/ddt"
	"github.com/ddt-go/ddt/internal/xlog"
	"github.com/ddt-go/ddt/kernel/incremental"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/scheduler"
)

func TestInsertSetThenValidate(t *testing.T) {
	k := incremental.New2D()
	c := container.New(8, k, nil)
	d := ddt.New(k, c, scheduler.Sequential{}, xlog.Discard)

	points := map[label.Index][]point.Point{
		0: {{0, 0}, {4, 0}, {0, 4}},
		1: {{10, 10}, {14, 10}, {10, 14}},
	}
	require.NoError(t, d.InsertSet(points))

	verts, err := d.Vertices()
	require.NoError(t, err)
	require.True(t, len(verts) >= 6)

	ok, violations := d.Validate(true, 10)
	require.True(t, ok, "%v", violations)
}

func TestInsertPointSingle(t *testing.T) {
	k := incremental.New2D()
	c := container.New(8, k, nil)
	d := ddt.New(k, c, scheduler.Sequential{}, xlog.Discard)

	require.NoError(t, d.InsertPoint(point.Point{0, 0}, 0))
	require.NoError(t, d.InsertPoint(point.Point{4, 0}, 0))
	require.NoError(t, d.InsertPoint(point.Point{0, 4}, 0))

	verts, err := d.Vertices()
	require.NoError(t, err)
	require.Len(t, verts, 3)
}
