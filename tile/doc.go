// Package tile implements the tile triangulation: a local Delaunay complex
// (kernel.Complex) paired with a tile-index label per finite vertex, plus
// the locality predicates (local/foreign/mixed/main) that let many tiles'
// local complexes stand in for one global Delaunay triangulation.
package tile
