package vrt

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ddt-go/ddt/ddt"
	"github.com/ddt-go/ddt/point"
)

var facetFields = []Field{
	{Name: "tile", Type: "Integer"},
	{Name: "cell", Type: "Integer"},
	{Name: "index", Type: "Integer"},
	{Name: "local", Type: "Integer"},
	{Name: "wkt", Type: "String"},
}

// WriteFacetHeader emits the VRT header for the facets layer. Facets are
// lines in 2D (a triangle's edge) and triangles in 3D (a tetrahedron's
// face), so the declared OGR geometry type is wkbPolygon when dim is 3,
// wkbLineString otherwise.
func WriteFacetHeader(w io.Writer, csvName string, dim int) error {
	geomType := "wkbLineString"
	if dim == 3 {
		geomType = "wkbPolygon"
	}
	return WriteHeader(w, "facets", csvName, geomType, facetFields)
}

// WriteFacetCSV emits one row per main facet: tile, cell, index, local
// count, WKT geometry of the facet's own vertices (the cell's vertices
// without the covertex).
func WriteFacetCSV(w io.Writer, d *ddt.Distributed) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"tile", "cell", "index", "local", "wkt"}); err != nil {
		return err
	}

	facets, err := d.Facets()
	if err != nil {
		return err
	}
	dim := d.Kernel.Dimension()
	for _, f := range facets {
		var pts []point.Point
		local := 0
		for i := 0; i <= dim; i++ {
			if i == f.Index {
				continue
			}
			vr, err := d.VertexOf(ddt.CellRef{Tile: f.Tile, Cell: f.Cell}, i)
			if err != nil {
				return err
			}
			p, err := d.PointOf(vr)
			if err != nil {
				return err
			}
			pts = append(pts, p)
			if d.MainTileOfVertex(vr) == f.Tile {
				local++
			}
		}
		geom := wktLineString(pts)
		if dim == 3 {
			geom = wktPolygon(pts)
		}
		row := []string{
			strconv.Itoa(int(f.Tile)),
			strconv.Itoa(int(f.Cell)),
			strconv.Itoa(f.Index),
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
