package vrt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/container"
	"github.com/ddt-go/ddt/ddt"
	"github.com/ddt-go/ddt/internal/xlog"
	"github.com/ddt-go/ddt/io/vrt"
	"github.com/ddt-go/ddt/kernel/incremental"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/scheduler"
)

func TestWriteLayers(t *testing.T) {
	k := incremental.New2D()
	c := container.New(4, k, nil)
	d := ddt.New(k, c, scheduler.Sequential{}, xlog.Discard)

	require.NoError(t, d.InsertSet(map[label.Index][]point.Point{
		0: {{0, 0}, {4, 0}, {0, 4}},
	}))

	var vHeader, vCSV bytes.Buffer
	require.NoError(t, vrt.WriteVertexHeader(&vHeader, "vertices.csv"))
	require.NoError(t, vrt.WriteVertexCSV(&vCSV, d))
	require.True(t, strings.Contains(vHeader.String(), "OGRVRTLayer"))
	require.True(t, strings.Contains(vCSV.String(), "POINT"))

	var cHeader, cCSV bytes.Buffer
	require.NoError(t, vrt.WriteCellHeader(&cHeader, "cells.csv", 2))
	require.NoError(t, vrt.WriteCellCSV(&cCSV, d))
	require.True(t, strings.Contains(cCSV.String(), "POLYGON"))

	var tHeader, tCSV bytes.Buffer
	require.NoError(t, vrt.WriteTINHeader(&tHeader, "tins.csv"))
	require.NoError(t, vrt.WriteTINCSV(&tCSV, d))
	require.True(t, strings.Contains(tCSV.String(), "TIN"))
}
