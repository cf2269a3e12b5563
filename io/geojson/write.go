package geojson

import (
	"encoding/json"
	"io"

	"github.com/ddt-go/ddt/ddt"
)

type geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

type properties struct {
	Tile  int `json:"tile"`
	ID    int `json:"id"`
	Local int `json:"local"`
}

type feature struct {
	Type       string     `json:"type"`
	Geometry   geometry   `json:"geometry"`
	Properties properties `json:"properties"`
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

// Write emits d as one FeatureCollection: every main vertex as a Point
// feature, every main cell as a Polygon feature. A cell feature's "local"
// property (used by consumers to colour it) counts how many of its
// vertices carry the cell's own tile label.
func Write(w io.Writer, d *ddt.Distributed) error {
	fc := featureCollection{Type: "FeatureCollection"}

	verts, err := d.Vertices()
	if err != nil {
		return err
	}
	for _, v := range verts {
		p, err := d.PointOf(v)
		if err != nil {
			return err
		}
		coords := make([]float64, len(p))
		copy(coords, p)
		fc.Features = append(fc.Features, feature{
			Type:     "Feature",
			Geometry: geometry{Type: "Point", Coordinates: coords},
			Properties: properties{
				Tile:  int(v.Tile),
				ID:    int(v.Vertex),
				Local: 1,
			},
		})
	}

	cells, err := d.Cells()
	if err != nil {
		return err
	}
	dim := d.Kernel.Dimension()
	n := dim + 1
	for _, c := range cells {
		ring := make([][]float64, 0, n+1)
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
			coords := make([]float64, len(p))
			copy(coords, p)
			ring = append(ring, coords)
			if d.MainTileOfVertex(vr) == c.Tile {
				local++
			}
		}
		if len(ring) > 0 {
			ring = append(ring, ring[0])
		}
		fc.Features = append(fc.Features, feature{
			Type:     "Feature",
			Geometry: geometry{Type: "Polygon", Coordinates: [][][]float64{ring}},
			Properties: properties{
				Tile:  int(c.Tile),
				ID:    int(c.Cell),
				Local: local,
			},
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	return enc.Encode(fc)
}
