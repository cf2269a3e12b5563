package scheduler

import (
	"context"
	"sync"

	"github.com/ddt-go/ddt/label"
)

// Pooled runs each Ranges* call over a fixed-size worker pool: P
// goroutines draining a task channel, with a sync.WaitGroup barrier at
// the end of every call. It is grounded on the teacher's
// context.Context-driven BFS walker shape, generalized from one
// cancellable traversal to a reusable worker pool; per-tile locking
// lives in container/messaging, not here.
type Pooled struct {
	P   int
	Ctx context.Context
}

var _ Scheduler = Pooled{}

// NewPooled returns a Pooled scheduler with p workers (p < 1 is clamped
// to 1). ctx is accepted purely as a fairness/timeout knob; nil means
// context.Background().
func NewPooled(p int, ctx context.Context) Pooled {
	if p < 1 {
		p = 1
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return Pooled{P: p, Ctx: ctx}
}

func (s Pooled) run(n int, work func(i int)) {
	tasks := make(chan int, n)
	for i := 0; i < n; i++ {
		tasks <- i
	}
	close(tasks)

	var wg sync.WaitGroup
	workers := s.P
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range tasks {
				select {
				case <-s.Ctx.Done():
					return
				default:
				}
				work(i)
			}
		}()
	}
	wg.Wait()
}

func (s Pooled) RangesTransform(tiles []label.Index, fn func(label.Index) error) error {
	if len(tiles) == 0 {
		return nil
	}
	var mu sync.Mutex
	var firstErr error
	s.run(len(tiles), func(i int) {
		if err := fn(tiles[i]); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}
	})
	return firstErr
}

func (s Pooled) RangesTransformReduce(tiles []label.Index, fn func(label.Index) (any, error), reduce func(acc, result any) any, zero any) (any, error) {
	if len(tiles) == 0 {
		return zero, nil
	}
	var mu sync.Mutex
	acc := zero
	var firstErr error
	s.run(len(tiles), func(i int) {
		r, err := fn(tiles[i])
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		acc = reduce(acc, r)
	})
	return acc, firstErr
}

func (s Pooled) RangesReduce(tiles []label.Index, fn func(label.Index) (any, error), reduce func(acc, result any) any, zero any) (any, error) {
	return s.RangesTransformReduce(tiles, fn, reduce, zero)
}

func (s Pooled) RangesJoinTransform(tilesA, tilesB []label.Index, fn func(label.Index) error) error {
	inB := make(map[label.Index]bool, len(tilesB))
	for _, t := range tilesB {
		inB[t] = true
	}
	var joined []label.Index
	for _, t := range tilesA {
		if inB[t] {
			joined = append(joined, t)
		}
	}
	return s.RangesTransform(joined, fn)
}

func (s Pooled) RangesForEachUntilFixpoint(tiles []label.Index, round func(label.Index) (bool, error)) error {
	if len(tiles) == 0 {
		return nil
	}
	for {
		var mu sync.Mutex
		anyWork := false
		var firstErr error
		s.run(len(tiles), func(i int) {
			did, err := round(tiles[i])
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			if did {
				anyWork = true
			}
		})
		if firstErr != nil {
			return firstErr
		}
		if !anyWork {
			return nil
		}
	}
}
