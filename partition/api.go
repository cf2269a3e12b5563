package partition

import (
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
)

// Partitioner assigns a point to the tile that should locally-insert it.
type Partitioner interface {
	Assign(p point.Point) label.Index
}

// Source is an iterator of (point, tile) pairs, the shape
// ddt.Distributed.Repartition reads from when moving points to a new
// Partitioner.
type Source interface {
	// Next returns the next (point, label) pair, or ok == false once
	// exhausted.
	Next() (p point.Point, lbl label.Index, ok bool)
}
