package geojson_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/container"
	"github.com/ddt-go/ddt/ddt"
	"github.com/ddt-go/ddt/internal/xlog"
	"github.com/ddt-go/ddt/io/geojson"
	"github.com/ddt-go/ddt/kernel/incremental"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/scheduler"
)

func TestWriteMixesPointsAndPolygons(t *testing.T) {
	k := incremental.New2D()
	c := container.New(4, k, nil)
	d := ddt.New(k, c, scheduler.Sequential{}, xlog.Discard)

	require.NoError(t, d.InsertSet(map[label.Index][]point.Point{
		0: {{0, 0}, {4, 0}, {0, 4}},
	}))

	var buf bytes.Buffer
	require.NoError(t, geojson.Write(&buf, d))

	out := buf.String()
	require.True(t, strings.Contains(out, "\"FeatureCollection\""))
	require.True(t, strings.Contains(out, "\"Point\""))
	require.True(t, strings.Contains(out, "\"Polygon\""))
}
