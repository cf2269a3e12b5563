package vtu

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ddt-go/ddt/ddt"
	"github.com/ddt-go/ddt/label"
)

const (
	vtkTriangle = 5
	vtkTetra    = 10
)

// appendedBlock writes data as one length-prefixed (uint32 byte count) VTK
// appended-data block and returns its total size, including the prefix, so
// the caller can compute the next DataArray's offset.
func appendedBlock(buf *bytes.Buffer, data []byte) int {
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(len(data)))
	buf.Write(hdr[:])
	buf.Write(data)
	return 4 + len(data)
}

// WritePiece emits tile idx's own complex (all its local and foreign
// vertices, every finite cell) as one self-contained .vtu piece.
func WritePiece(w io.Writer, d *ddt.Distributed, idx label.Index) error {
	dim := d.Kernel.Dimension()
	if dim != 2 && dim != 3 {
		return ErrUnsupportedDimension
	}
	cellType := vtkTriangle
	if dim == 3 {
		cellType = vtkTetra
	}

	verts, err := d.TileVertices(idx)
	if err != nil {
		return err
	}
	row := make(map[ddt.VertexRef]int, len(verts))
	for i, v := range verts {
		row[v] = i
	}

	cells, err := d.TileCells(idx)
	if err != nil {
		return err
	}

	var points, pointTile bytes.Buffer
	for _, v := range verts {
		p, err := d.PointOf(v)
		if err != nil {
			return err
		}
		for axis := 0; axis < 3; axis++ {
			var c float64
			if axis < len(p) {
				c = p[axis]
			}
			if err := binary.Write(&points, binary.LittleEndian, c); err != nil {
				return err
			}
		}
		if err := binary.Write(&pointTile, binary.LittleEndian, int32(d.MainTileOfVertex(v))); err != nil {
			return err
		}
	}

	var connectivity, offsets, types, cellTile bytes.Buffer
	running := int64(0)
	n := dim + 1
	for _, c := range cells {
		for i := 0; i < n; i++ {
			vr, err := d.VertexOf(c, i)
			if err != nil {
				return err
			}
			r, ok := row[vr]
			if !ok {
				return fmt.Errorf("vtu: cell references vertex not resident in tile %d", idx)
			}
			if err := binary.Write(&connectivity, binary.LittleEndian, int64(r)); err != nil {
				return err
			}
		}
		running += int64(n)
		if err := binary.Write(&offsets, binary.LittleEndian, running); err != nil {
			return err
		}
		types.WriteByte(byte(cellType))
		if err := binary.Write(&cellTile, binary.LittleEndian, int32(idx)); err != nil {
			return err
		}
	}

	var appended bytes.Buffer
	offPoints := 0
	offConn := offPoints + appendedBlock(&appended, points.Bytes())
	offOffsets := offConn + appendedBlock(&appended, connectivity.Bytes())
	offTypes := offOffsets + appendedBlock(&appended, offsets.Bytes())
	offPointTile := offTypes + appendedBlock(&appended, types.Bytes())
	offCellTile := offPointTile + appendedBlock(&appended, pointTile.Bytes())
	appendedBlock(&appended, cellTile.Bytes())

	fmt.Fprintf(w, "<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n")
	fmt.Fprintf(w, " <UnstructuredGrid>\n")
	fmt.Fprintf(w, "  <Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", len(verts), len(cells))
	fmt.Fprintf(w, "   <Points>\n")
	fmt.Fprintf(w, "    <DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"appended\" offset=\"%d\"/>\n", offPoints)
	fmt.Fprintf(w, "   </Points>\n")
	fmt.Fprintf(w, "   <Cells>\n")
	fmt.Fprintf(w, "    <DataArray type=\"Int64\" Name=\"connectivity\" format=\"appended\" offset=\"%d\"/>\n", offConn)
	fmt.Fprintf(w, "    <DataArray type=\"Int64\" Name=\"offsets\" format=\"appended\" offset=\"%d\"/>\n", offOffsets)
	fmt.Fprintf(w, "    <DataArray type=\"UInt8\" Name=\"types\" format=\"appended\" offset=\"%d\"/>\n", offTypes)
	fmt.Fprintf(w, "   </Cells>\n")
	fmt.Fprintf(w, "   <PointData Scalars=\"tile\">\n")
	fmt.Fprintf(w, "    <DataArray type=\"Int32\" Name=\"tile\" format=\"appended\" offset=\"%d\"/>\n", offPointTile)
	fmt.Fprintf(w, "   </PointData>\n")
	fmt.Fprintf(w, "   <CellData Scalars=\"tile\">\n")
	fmt.Fprintf(w, "    <DataArray type=\"Int32\" Name=\"tile\" format=\"appended\" offset=\"%d\"/>\n", offCellTile)
	fmt.Fprintf(w, "   </CellData>\n")
	fmt.Fprintf(w, "  </Piece>\n")
	fmt.Fprintf(w, " </UnstructuredGrid>\n")
	fmt.Fprintf(w, " <AppendedData encoding=\"raw\">\n_")
	if _, err := w.Write(appended.Bytes()); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n </AppendedData>\n</VTKFile>\n")
	return nil
}
