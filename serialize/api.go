package serialize

import (
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/tile"
)

// Serializer is the persistence contract a bounded container evicts tiles
// through: Save on eviction, Load on demand. Implementations decide the
// storage medium (files, object storage, memory-mapped regions); none of
// that is visible above this interface.
type Serializer interface {
	// HasTile reports whether persisted state exists for the given tile
	// index, without loading it.
	HasTile(idx label.Index) bool
	// Load populates t (already constructed at the right dimension and
	// index) from persisted state. It returns false if no persisted
	// state exists for t.ID.
	Load(t *tile.Triangulation) (bool, error)
	// Save persists t's current state, returning false if it chose not
	// to persist (e.g. t has no content worth saving).
	Save(t *tile.Triangulation) (bool, error)
}
