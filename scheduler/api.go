package scheduler

import "github.com/ddt-go/ddt/label"

// Scheduler runs the same shape of per-tile work across however many
// tiles a distributed triangulation currently holds, choosing how much of
// that work runs concurrently. None of its methods cancel a task
// mid-flight (spec.md §4.6 names that an explicit non-goal); a
// context.Context accepted by an implementation is purely a fairness or
// timeout knob.
type Scheduler interface {
	// RangesTransform applies fn to every tile index in tiles,
	// independently, discarding nothing: callers that need the results
	// collect them via fn's own side effects or a synchronized
	// accumulator.
	RangesTransform(tiles []label.Index, fn func(label.Index) error) error

	// RangesTransformReduce applies fn to every tile and folds each
	// result into acc via reduce, which must be safe to call
	// concurrently from multiple goroutines under whatever Scheduler
	// implements this.
	RangesTransformReduce(tiles []label.Index, fn func(label.Index) (any, error), reduce func(acc, result any) any, zero any) (any, error)

	// RangesReduce folds fn's per-tile result into acc via reduce,
	// without a separate transform step (fn itself produces the
	// reducible value).
	RangesReduce(tiles []label.Index, fn func(label.Index) (any, error), reduce func(acc, result any) any, zero any) (any, error)

	// RangesJoinTransform runs fn(t) for every tile index t present in
	// both tilesA and tilesB (the two-container join form).
	RangesJoinTransform(tilesA, tilesB []label.Index, fn func(label.Index) error) error

	// RangesForEachUntilFixpoint repeatedly calls round over the given
	// tiles until it reports no tile did any work — the c1×c2→c3
	// drain-until-globally-empty form the splaying engine's SPLAY phase
	// uses. round returns, per tile, whether that tile produced new
	// outgoing work this pass.
	RangesForEachUntilFixpoint(tiles []label.Index, round func(label.Index) (didWork bool, err error)) error
}
