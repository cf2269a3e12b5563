package scheduler_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/scheduler"
)

func allSchedulers() map[string]scheduler.Scheduler {
	return map[string]scheduler.Scheduler{
		"sequential":  scheduler.Sequential{},
		"pooled":      scheduler.NewPooled(4, nil),
		"distributed": scheduler.NewDistributed(4, nil),
	}
}

func TestRangesTransformVisitsEveryTile(t *testing.T) {
	tiles := []label.Index{0, 1, 2, 3, 4}
	for name, s := range allSchedulers() {
		t.Run(name, func(t *testing.T) {
			var mu sync.Mutex
			seen := map[label.Index]bool{}
			err := s.RangesTransform(tiles, func(idx label.Index) error {
				mu.Lock()
				seen[idx] = true
				mu.Unlock()
				return nil
			})
			require.NoError(t, err)
			require.Len(t, seen, len(tiles))
		})
	}
}

func TestRangesTransformReduceSumsCounts(t *testing.T) {
	tiles := []label.Index{0, 1, 2, 3}
	for name, s := range allSchedulers() {
		t.Run(name, func(t *testing.T) {
			sum, err := s.RangesTransformReduce(tiles,
				func(idx label.Index) (any, error) { return int(idx), nil },
				func(acc, r any) any { return acc.(int) + r.(int) },
				0)
			require.NoError(t, err)
			require.Equal(t, 6, sum)
		})
	}
}

func TestRangesForEachUntilFixpointTerminates(t *testing.T) {
	tiles := []label.Index{0, 1, 2}
	for name, s := range allSchedulers() {
		t.Run(name, func(t *testing.T) {
			var remaining int32 = 3
			err := s.RangesForEachUntilFixpoint(tiles, func(idx label.Index) (bool, error) {
				if atomic.LoadInt32(&remaining) <= 0 {
					return false, nil
				}
				atomic.AddInt32(&remaining, -1)
				return true, nil
			})
			require.NoError(t, err)
		})
	}
}

func TestRangesJoinTransformOnlyCommonTiles(t *testing.T) {
	a := []label.Index{0, 1, 2}
	b := []label.Index{1, 2, 3}
	for name, s := range allSchedulers() {
		t.Run(name, func(t *testing.T) {
			var mu sync.Mutex
			seen := map[label.Index]bool{}
			err := s.RangesJoinTransform(a, b, func(idx label.Index) error {
				mu.Lock()
				seen[idx] = true
				mu.Unlock()
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, map[label.Index]bool{1: true, 2: true}, seen)
		})
	}
}
