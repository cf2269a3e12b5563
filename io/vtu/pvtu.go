package vtu

import (
	"encoding/xml"
	"io"
	"sort"

	"github.com/ddt-go/ddt/ddt"
	"github.com/ddt-go/ddt/label"
)

type pDataArray struct {
	Type string `xml:"type,attr"`
	Name string `xml:"Name,attr"`
}

type pPointData struct {
	Scalars string       `xml:"Scalars,attr"`
	Arrays  []pDataArray `xml:"PDataArray"`
}

type pCellData struct {
	Scalars string       `xml:"Scalars,attr"`
	Arrays  []pDataArray `xml:"PDataArray"`
}

type pPoints struct {
	Array pDataArray `xml:"PDataArray"`
}

type piece struct {
	Source string `xml:"Source,attr"`
}

type pUnstructuredGrid struct {
	GhostLevel int         `xml:"GhostLevel,attr"`
	PointData  pPointData  `xml:"PPointData"`
	CellData   pCellData   `xml:"PCellData"`
	Points     pPoints     `xml:"PPoints"`
	Pieces     []piece     `xml:"Piece"`
}

type vtkFile struct {
	XMLName   xml.Name          `xml:"VTKFile"`
	Type      string            `xml:"type,attr"`
	Version   string            `xml:"version,attr"`
	ByteOrder string            `xml:"byte_order,attr"`
	Grid      pUnstructuredGrid `xml:"PUnstructuredGrid"`
}

// WritePVTU emits the index gluing together one .vtu piece per tile,
// referenced by the file names pieceName returns for each tile index.
func WritePVTU(w io.Writer, d *ddt.Distributed, pieceName func(label.Index) string) error {
	tiles := append([]label.Index(nil), d.Tiles()...)
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })

	f := vtkFile{
		Type:      "PUnstructuredGrid",
		Version:   "0.1",
		ByteOrder: "LittleEndian",
		Grid: pUnstructuredGrid{
			GhostLevel: 0,
			PointData: pPointData{
				Scalars: "tile",
				Arrays:  []pDataArray{{Type: "Int32", Name: "tile"}},
			},
			CellData: pCellData{
				Scalars: "tile",
				Arrays:  []pDataArray{{Type: "Int32", Name: "tile"}},
			},
			Points: pPoints{Array: pDataArray{Type: "Float64", Name: "Points"}},
		},
	}
	for _, idx := range tiles {
		f.Grid.Pieces = append(f.Grid.Pieces, piece{Source: pieceName(idx)})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", " ")
	if err := enc.Encode(f); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
