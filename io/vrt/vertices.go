package vrt

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ddt-go/ddt/ddt"
)

var vertexFields = []Field{
	{Name: "tile", Type: "Integer"},
	{Name: "id", Type: "Integer"},
	{Name: "wkt", Type: "String"},
}

// WriteVertexHeader emits the VRT header for the vertices layer.
func WriteVertexHeader(w io.Writer, csvName string) error {
	return WriteHeader(w, "vertices", csvName, "wkbPoint", vertexFields)
}

// WriteVertexCSV emits one row per main vertex: tile, id, WKT point.
func WriteVertexCSV(w io.Writer, d *ddt.Distributed) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"tile", "id", "wkt"}); err != nil {
		return err
	}

	verts, err := d.Vertices()
	if err != nil {
		return err
	}
	for _, v := range verts {
		p, err := d.PointOf(v)
		if err != nil {
			return err
		}
		row := []string{
			strconv.Itoa(int(v.Tile)),
			strconv.Itoa(int(v.Vertex)),
			wktPoint(p),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
