package tile

import "errors"

// Sentinel errors for the tile package.
var (
	// ErrUnknownVertex indicates a VertexID not present in this tile.
	ErrUnknownVertex = errors.New("tile: unknown vertex")
	// ErrNotMixed indicates RelocateFacet/RelocateCell was asked to
	// relocate a simplex that is not mixed (nothing to relocate).
	ErrNotMixed = errors.New("tile: simplex is not mixed")
	// ErrOrientationMismatch indicates a candidate relocation target
	// matched on vertex set but disagreed in orientation parity.
	ErrOrientationMismatch = errors.New("tile: orientation-reversed facet match rejected")
	ErrNoRelocationTarget  = errors.New("tile: no relocation target found")
	// ErrLabelMismatch indicates Insert was asked to insert a point onto
	// an already-labelled vertex under a different label.
	ErrLabelMismatch = errors.New("tile: label mismatch on existing vertex")
)
