package scheduler

import "github.com/ddt-go/ddt/label"

// Sequential runs every Ranges* call with no goroutines and no locks —
// the baseline Scheduler every other implementation must agree with.
type Sequential struct{}

var _ Scheduler = Sequential{}

func (Sequential) RangesTransform(tiles []label.Index, fn func(label.Index) error) error {
	for _, t := range tiles {
		if err := fn(t); err != nil {
			return err
		}
	}
	return nil
}

func (Sequential) RangesTransformReduce(tiles []label.Index, fn func(label.Index) (any, error), reduce func(acc, result any) any, zero any) (any, error) {
	acc := zero
	for _, t := range tiles {
		r, err := fn(t)
		if err != nil {
			return acc, err
		}
		acc = reduce(acc, r)
	}
	return acc, nil
}

func (Sequential) RangesReduce(tiles []label.Index, fn func(label.Index) (any, error), reduce func(acc, result any) any, zero any) (any, error) {
	return Sequential{}.RangesTransformReduce(tiles, fn, reduce, zero)
}

func (Sequential) RangesJoinTransform(tilesA, tilesB []label.Index, fn func(label.Index) error) error {
	inB := make(map[label.Index]bool, len(tilesB))
	for _, t := range tilesB {
		inB[t] = true
	}
	for _, t := range tilesA {
		if !inB[t] {
			continue
		}
		if err := fn(t); err != nil {
			return err
		}
	}
	return nil
}

func (Sequential) RangesForEachUntilFixpoint(tiles []label.Index, round func(label.Index) (bool, error)) error {
	for {
		anyWork := false
		for _, t := range tiles {
			did, err := round(t)
			if err != nil {
				return err
			}
			if did {
				anyWork = true
			}
		}
		if !anyWork {
			return nil
		}
	}
}
