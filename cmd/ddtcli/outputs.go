package main

import (
	"fmt"
	"os"

	"github.com/ddt-go/ddt/ddt"
	"github.com/ddt-go/ddt/io/geojson"
	"github.com/ddt-go/ddt/io/ply"
	"github.com/ddt-go/ddt/io/vrt"
	"github.com/ddt-go/ddt/io/vtu"
	"github.com/ddt-go/ddt/label"
)

// writeOutputs writes every output format whose basename flag was given.
func writeOutputs(d *ddt.Distributed) error {
	if plyBase != "" {
		if err := writePLY(d, plyBase+".ply"); err != nil {
			return fmt.Errorf("ply: %w", err)
		}
	}
	if cgalBase != "" {
		if err := writeGeoJSON(d, cgalBase+".geojson"); err != nil {
			return fmt.Errorf("geojson: %w", err)
		}
	}
	if vrtBase != "" {
		if err := writeVRT(d, vrtBase); err != nil {
			return fmt.Errorf("vrt: %w", err)
		}
	}
	if pvtuBase != "" {
		if err := writeVTU(d, pvtuBase); err != nil {
			return fmt.Errorf("vtu: %w", err)
		}
	}
	return nil
}

func writePLY(d *ddt.Distributed, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ply.Write(f, d)
}

func writeGeoJSON(d *ddt.Distributed, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return geojson.Write(f, d)
}

func writeVRT(d *ddt.Distributed, base string) error {
	layers := []struct {
		name      string
		writeHdr  func(f *os.File) error
		writeBody func(f *os.File) error
	}{
		{"vertices", func(f *os.File) error { return vrt.WriteVertexHeader(f, base+"_vertices.csv") }, func(f *os.File) error { return vrt.WriteVertexCSV(f, d) }},
		{"facets", func(f *os.File) error { return vrt.WriteFacetHeader(f, base+"_facets.csv", d.Kernel.Dimension()) }, func(f *os.File) error { return vrt.WriteFacetCSV(f, d) }},
		{"cells", func(f *os.File) error { return vrt.WriteCellHeader(f, base+"_cells.csv", d.Kernel.Dimension()) }, func(f *os.File) error { return vrt.WriteCellCSV(f, d) }},
		{"tins", func(f *os.File) error { return vrt.WriteTINHeader(f, base+"_tins.csv") }, func(f *os.File) error { return vrt.WriteTINCSV(f, d) }},
	}
	for _, layer := range layers {
		vf, err := os.Create(base + "_" + layer.name + ".vrt")
		if err != nil {
			return err
		}
		err = layer.writeHdr(vf)
		vf.Close()
		if err != nil {
			return err
		}

		cf, err := os.Create(base + "_" + layer.name + ".csv")
		if err != nil {
			return err
		}
		err = layer.writeBody(cf)
		cf.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func writeVTU(d *ddt.Distributed, base string) error {
	names := make(map[label.Index]string)
	for _, idx := range d.Tiles() {
		names[idx] = fmt.Sprintf("%s_tile%d.vtu", base, int(idx))
	}

	for idx, name := range names {
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		err = vtu.WritePiece(f, d, idx)
		f.Close()
		if err != nil {
			return err
		}
	}

	idxFile, err := os.Create(base + ".pvtu")
	if err != nil {
		return err
	}
	defer idxFile.Close()
	return vtu.WritePVTU(idxFile, d, func(idx label.Index) string { return names[idx] })
}
