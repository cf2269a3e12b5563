// Package ply writes a distributed triangulation as a binary
// little-endian PLY file: one vertex element per main vertex, one face
// element per main cell's boundary facet (triangles for D=2, tetrahedra
// are emitted as their four triangular faces for D=3).
package ply
