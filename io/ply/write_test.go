package ply_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/container"
	"github.com/ddt-go/ddt/ddt"
	"github.com/ddt-go/ddt/internal/xlog"
	"github.com/ddt-go/ddt/io/ply"
	"github.com/ddt-go/ddt/kernel/incremental"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/scheduler"
)

func TestWriteProducesValidHeader(t *testing.T) {
	k := incremental.New2D()
	c := container.New(4, k, nil)
	d := ddt.New(k, c, scheduler.Sequential{}, xlog.Discard)

	require.NoError(t, d.InsertSet(map[label.Index][]point.Point{
		0: {{0, 0}, {4, 0}, {0, 4}},
	}))

	var buf bytes.Buffer
	require.NoError(t, ply.Write(&buf, d))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "ply\nformat binary_little_endian 1.0\n"))
	require.Contains(t, out, "element vertex 3\n")
	require.Contains(t, out, "end_header\n")
}
