package vrt

import (
	"fmt"
	"strings"

	"github.com/ddt-go/ddt/point"
)

func coordString(p point.Point) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = fmt.Sprintf("%g", c)
	}
	return strings.Join(parts, " ")
}

func wktPoint(p point.Point) string {
	return fmt.Sprintf("POINT (%s)", coordString(p))
}

func wktLineString(pts []point.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = coordString(p)
	}
	return fmt.Sprintf("LINESTRING (%s)", strings.Join(parts, ", "))
}

// wktPolygon closes the ring by repeating pts[0] at the end, as WKT requires.
func wktPolygon(pts []point.Point) string {
	parts := make([]string, 0, len(pts)+1)
	for _, p := range pts {
		parts = append(parts, coordString(p))
	}
	if len(pts) > 0 {
		parts = append(parts, coordString(pts[0]))
	}
	return fmt.Sprintf("POLYGON ((%s))", strings.Join(parts, ", "))
}

// wktPolyhedral builds a GEOMETRYCOLLECTION of the D+1 triangular faces of
// a D-simplex (D=3: a tetrahedron's four faces), one face per omitted
// vertex, since WKT has no native "solid" for a single tetrahedron.
func wktPolyhedral(pts []point.Point) string {
	faces := make([]string, 0, len(pts))
	for omit := range pts {
		face := make([]point.Point, 0, len(pts)-1)
		for i, p := range pts {
			if i == omit {
				continue
			}
			face = append(face, p)
		}
		faces = append(faces, wktPolygon(face))
	}
	return fmt.Sprintf("GEOMETRYCOLLECTION (%s)", strings.Join(faces, ", "))
}

// wktTIN joins a set of closed triangle rings into one TIN geometry.
func wktTIN(triangles [][]point.Point) string {
	rings := make([]string, 0, len(triangles))
	for _, tri := range triangles {
		parts := make([]string, 0, len(tri)+1)
		for _, p := range tri {
			parts = append(parts, coordString(p))
		}
		if len(tri) > 0 {
			parts = append(parts, coordString(tri[0]))
		}
		rings = append(rings, fmt.Sprintf("((%s))", strings.Join(parts, ", ")))
	}
	return fmt.Sprintf("TIN (%s)", strings.Join(rings, ", "))
}
