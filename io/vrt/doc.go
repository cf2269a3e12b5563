// Package vrt writes a distributed triangulation as GDAL-style VRT+CSV
// layer pairs: one pair per simplex kind (vertices, facets, cells, and
// whole per-tile TINs), each with a WKT geometry column and a VRT XML
// header declaring geometry type, CRS, and schema.
package vrt
