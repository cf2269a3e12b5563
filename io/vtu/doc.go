// Package vtu writes a distributed triangulation as one VTK unstructured
// grid (.vtu) piece per tile, plus a .pvtu index gluing the pieces into a
// single parallel dataset. Geometry is binary-appended (little-endian,
// raw-encoded) rather than inline ASCII, following VTK's "_" appended-data
// convention.
package vtu
