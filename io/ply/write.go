package ply

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ddt-go/ddt/ddt"
	"github.com/ddt-go/ddt/label"
)

type faceSpec struct {
	tile  label.Index
	verts []ddt.VertexRef
}

// Write emits d as a binary little-endian PLY: vertex element
// (x, y[, z], tile, id), face element (vertex_indices, tile, local).
// vertex_indices index the overall vertex list this function emits, built
// by walking each main vertex exactly once per tile in the order Vertices
// returns them.
func Write(w io.Writer, d *ddt.Distributed) error {
	dim := d.Kernel.Dimension()
	if dim != 2 && dim != 3 {
		return ErrUnsupportedDimension
	}

	verts, err := d.Vertices()
	if err != nil {
		return err
	}
	rowOf := make(map[ddt.VertexRef]int, len(verts))
	for i, v := range verts {
		rowOf[v] = i
	}

	faces, err := collectFaces(d, dim)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, len(verts), len(faces), dim); err != nil {
		return err
	}

	for _, v := range verts {
		p, err := d.PointOf(v)
		if err != nil {
			return err
		}
		if err := writeFloat32(bw, float32(p[0])); err != nil {
			return err
		}
		if err := writeFloat32(bw, float32(p[1])); err != nil {
			return err
		}
		if dim == 3 {
			if err := writeFloat32(bw, float32(p[2])); err != nil {
				return err
			}
		}
		if err := binary.Write(bw, binary.LittleEndian, int32(v.Tile)); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, int32(v.Vertex)); err != nil {
			return err
		}
	}

	for _, f := range faces {
		if err := bw.WriteByte(byte(len(f.verts))); err != nil {
			return err
		}
		local := 0
		for _, v := range f.verts {
			row, ok := rowOf[v]
			if !ok {
				return fmt.Errorf("ply: face references non-main vertex %+v", v)
			}
			if err := binary.Write(bw, binary.LittleEndian, int32(row)); err != nil {
				return err
			}
			if v.Tile == f.tile {
				local++
			}
		}
		if err := binary.Write(bw, binary.LittleEndian, int32(f.tile)); err != nil {
			return err
		}
		if err := bw.WriteByte(byte(local)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeFloat32(w io.Writer, f float32) error {
	return binary.Write(w, binary.LittleEndian, f)
}

func writeHeader(w *bufio.Writer, nVerts, nFaces, dim int) error {
	fmt.Fprintf(w, "ply\n")
	fmt.Fprintf(w, "format binary_little_endian 1.0\n")
	fmt.Fprintf(w, "element vertex %d\n", nVerts)
	fmt.Fprintf(w, "property float x\n")
	fmt.Fprintf(w, "property float y\n")
	if dim == 3 {
		fmt.Fprintf(w, "property float z\n")
	}
	fmt.Fprintf(w, "property int tile\n")
	fmt.Fprintf(w, "property int id\n")
	fmt.Fprintf(w, "element face %d\n", nFaces)
	fmt.Fprintf(w, "property list uchar int vertex_indices\n")
	fmt.Fprintf(w, "property int tile\n")
	fmt.Fprintf(w, "property uchar local\n")
	_, err := fmt.Fprintf(w, "end_header\n")
	return err
}

func collectFaces(d *ddt.Distributed, dim int) ([]faceSpec, error) {
	cells, err := d.Cells()
	if err != nil {
		return nil, err
	}
	var faces []faceSpec
	for _, c := range cells {
		n := dim + 1
		vs := make([]ddt.VertexRef, n)
		for i := 0; i < n; i++ {
			vr, err := d.VertexOf(c, i)
			if err != nil {
				return nil, err
			}
			vs[i] = vr
		}
		if dim == 2 {
			faces = append(faces, faceSpec{tile: c.Tile, verts: vs})
			continue
		}
		for omit := 0; omit < n; omit++ {
			facet := make([]ddt.VertexRef, 0, n-1)
			for i, vr := range vs {
				if i == omit {
					continue
				}
				facet = append(facet, vr)
			}
			faces = append(faces, faceSpec{tile: c.Tile, verts: facet})
		}
	}
	return faces, nil
}
