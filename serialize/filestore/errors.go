package filestore

import "errors"

// ErrCorruptFile indicates a persisted tile file ended before its header
// or its declared vertex count was read in full, or that its stored
// dimension differs from the tile's.
var ErrCorruptFile = errors.New("filestore: corrupt tile file")
