package vrt

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ddt-go/ddt/ddt"
	"github.com/ddt-go/ddt/point"
)

var cellFields = []Field{
	{Name: "tile", Type: "Integer"},
	{Name: "cell", Type: "Integer"},
	{Name: "local", Type: "Integer"},
	{Name: "wkt", Type: "String"},
}

// WriteCellHeader emits the VRT header for the cells layer: a triangle
// polygon in 2D, a tetrahedron's four-face surface in 3D.
func WriteCellHeader(w io.Writer, csvName string, dim int) error {
	geomType := "wkbPolygon"
	if dim == 3 {
		geomType = "wkbGeometryCollection"
	}
	return WriteHeader(w, "cells", csvName, geomType, cellFields)
}

// WriteCellCSV emits one row per main cell: tile, cell, local count (the
// number of its vertices whose label matches the cell's own tile), WKT
// geometry.
func WriteCellCSV(w io.Writer, d *ddt.Distributed) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"tile", "cell", "local", "wkt"}); err != nil {
		return err
	}

	cells, err := d.Cells()
	if err != nil {
		return err
	}
	dim := d.Kernel.Dimension()
	n := dim + 1
	for _, c := range cells {
		pts := make([]point.Point, 0, n)
		local := 0
		for i := 0; i < n; i++ {
			vr, err := d.VertexOf(c, i)
			if err != nil {
				return err
			}
			p, err := d.PointOf(vr)
			if err != nil {
				return err
			}
			pts = append(pts, p)
			if d.MainTileOfVertex(vr) == c.Tile {
				local++
			}
		}
		geom := wktPolygon(pts)
		if dim == 3 {
			geom = wktPolyhedral(pts)
		}
		row := []string{
			strconv.Itoa(int(c.Tile)),
			strconv.Itoa(int(c.Cell)),
			strconv.Itoa(local),
			geom,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
