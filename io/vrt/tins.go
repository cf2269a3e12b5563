package vrt

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/ddt-go/ddt/ddt"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
)

var tinFields = []Field{
	{Name: "tile", Type: "Integer"},
	{Name: "wkt", Type: "String"},
}

// WriteTINHeader emits the VRT header for the TIN layer: one whole
// triangulated surface per tile.
func WriteTINHeader(w io.Writer, csvName string) error {
	return WriteHeader(w, "tins", csvName, "wkbGeometryCollection", tinFields)
}

// WriteTINCSV emits one row per tile: the TIN formed by all of that
// tile's own finite cells, each flattened to its triangular faces (a cell
// is already a triangle in 2D, or contributes its four facet triangles in
// 3D).
func WriteTINCSV(w io.Writer, d *ddt.Distributed) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"tile", "wkt"}); err != nil {
		return err
	}

	tiles := append([]label.Index(nil), d.Tiles()...)
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })

	dim := d.Kernel.Dimension()
	n := dim + 1
	for _, idx := range tiles {
		cells, err := d.TileCells(idx)
		if err != nil {
			return err
		}
		var triangles [][]point.Point
		for _, c := range cells {
			pts := make([]point.Point, 0, n)
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
			}
			if dim == 2 {
				triangles = append(triangles, pts)
				continue
			}
			for omit := range pts {
				face := make([]point.Point, 0, len(pts)-1)
				for i, p := range pts {
					if i == omit {
						continue
					}
					face = append(face, p)
				}
				triangles = append(triangles, face)
			}
		}
		row := []string{strconv.Itoa(int(idx)), wktTIN(triangles)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
