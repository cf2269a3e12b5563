package ddt

import "errors"

// Sentinel errors for the ddt package.
var (
	// ErrUnknownTile indicates a Ref named a tile this triangulation has
	// never seen.
	ErrUnknownTile = errors.New("ddt: unknown tile")
	// ErrRelocationFailed indicates main(x) or relocate(x, t) could not
	// find the requested simplex's representative — spec.md's "returns
	// the end sentinel... indicating corruption" condition, surfaced
	// here as an error instead of a sentinel iterator value.
	ErrRelocationFailed = errors.New("ddt: relocation failed (possible corruption)")
)
