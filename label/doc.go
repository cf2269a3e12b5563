// Package label defines the tile index type and the single, reusable
// "median" selector that decides the canonical (main) owner of every vertex,
// facet, and cell in a distributed triangulation.
//
// Per the design's note on re-architecture, the main-selector is kept here
// as one pure function parameterised over a slice of labels, rather than
// re-implemented once per simplex kind (vertex/facet/cell) — tile.CellIsMain
// and tile.FacetIsMain both call Median.
package label
