package container

import (
	"math/rand"
	"sync"

	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/serialize"
	"github.com/ddt-go/ddt/tile"
)

// Slot is one tile's container entry. InMemory is false when the tile's
// content has been evicted to the Serializer; Locked marks a slot as
// currently in use (by a caller holding a reference, or mid-eviction) and
// therefore ineligible to be picked as an eviction victim — the same
// "one global lock for accounting plus a per-slot flag instead of a
// second lock" shape the disk store and core.Graph both use.
type Slot struct {
	InMemory bool
	Locked   bool
	Tile     *tile.Triangulation
	UseCount int
}

// Container is the bounded-memory tile container: at most Capacity tiles
// held in memory at once, backed by a Serializer for the rest. A global
// mutex serializes capacity accounting and victim choice; Serializer I/O
// runs outside that mutex (see PrepareLoad/SafeLoad).
type Container struct {
	mu       sync.Mutex
	capacity int
	kern     kernel.Kernel
	ser      serialize.Serializer
	slots    map[label.Index]*Slot
	rnd      *rand.Rand

	// retryBudget bounds the busy-loop spec.md §4.2 allows when every
	// in-memory slot is locked; kept finite so tests stay deterministic.
	retryBudget int
}

// New returns an empty Container holding at most capacity tiles in
// memory at once, backed by ser for eviction/reload.
func New(capacity int, kern kernel.Kernel, ser serialize.Serializer) *Container {
	if capacity < 1 {
		capacity = 1
	}
	return &Container{
		capacity:    capacity,
		kern:        kern,
		ser:         ser,
		slots:       make(map[label.Index]*Slot),
		rnd:         rand.New(rand.NewSource(1)),
		retryBudget: 4096,
	}
}
