package vrt

import (
	"encoding/xml"
	"io"
)

// Field describes one OGR field declared in a VRT layer header.
type Field struct {
	Name string
	Type string // "Integer", "Real", "String"
}

type xmlField struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

type xmlGeometryField struct {
	Encoding string `xml:"encoding,attr"`
	Field    string `xml:"field,attr"`
}

type xmlLayer struct {
	Name          string           `xml:"name,attr"`
	SrcDataSource string           `xml:"SrcDataSource"`
	GeometryType  string           `xml:"GeometryType"`
	LayerSRS      string           `xml:"LayerSRS"`
	GeometryField xmlGeometryField `xml:"GeometryField"`
	Fields        []xmlField       `xml:"Field"`
}

type xmlDataSource struct {
	XMLName xml.Name `xml:"OGRVRTDataSource"`
	Layer   xmlLayer `xml:"OGRVRTLayer"`
}

// WriteHeader emits one VRT XML document describing a single CSV-backed
// layer: its OGR geometry type, CRS, WKT geometry column, and field
// schema.
func WriteHeader(w io.Writer, layerName, csvName, geometryType string, fields []Field) error {
	ds := xmlDataSource{
		Layer: xmlLayer{
			Name:          layerName,
			SrcDataSource: csvName,
			GeometryType:  geometryType,
			LayerSRS:      "WGS84",
			GeometryField: xmlGeometryField{Encoding: "WKT", Field: "wkt"},
		},
	}
	for _, f := range fields {
		ds.Layer.Fields = append(ds.Layer.Fields, xmlField{Name: f.Name, Type: f.Type})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", " ")
	if err := enc.Encode(ds); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
