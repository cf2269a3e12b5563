package vtu_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/container"
	"github.com/ddt-go/ddt/ddt"
	"github.com/ddt-go/ddt/internal/xlog"
	"github.com/ddt-go/ddt/io/vtu"
	"github.com/ddt-go/ddt/kernel/incremental"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/scheduler"
)

func TestWritePieceAndIndex(t *testing.T) {
	k := incremental.New2D()
	c := container.New(4, k, nil)
	d := ddt.New(k, c, scheduler.Sequential{}, xlog.Discard)

	require.NoError(t, d.InsertSet(map[label.Index][]point.Point{
		0: {{0, 0}, {4, 0}, {0, 4}},
	}))

	var piece bytes.Buffer
	require.NoError(t, vtu.WritePiece(&piece, d, 0))
	out := piece.String()
	require.True(t, strings.Contains(out, "UnstructuredGrid"))
	require.True(t, strings.Contains(out, "NumberOfPoints=\"3\""))
	require.True(t, strings.Contains(out, "AppendedData encoding=\"raw\""))

	var idx bytes.Buffer
	require.NoError(t, vtu.WritePVTU(&idx, d, func(label.Index) string { return "tile0.vtu" }))
	require.True(t, strings.Contains(idx.String(), "PUnstructuredGrid"))
}
