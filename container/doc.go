// Package container implements the bounded-memory tile container: a
// fixed-capacity slot map from tile index to in-memory tile.Triangulation,
// evicting via a Serializer when capacity is reached. It is grounded on
// the disk-backed tile store's mutex-guarded map plus byte-budget
// eviction shape, narrowed to the simpler synchronous evict-on-demand
// model this container needs (no background I/O goroutine: Save/Load run
// inline, outside the capacity-accounting lock, via PrepareLoad/SafeLoad).
package container
