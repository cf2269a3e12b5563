package scheduler

import (
	"context"
	"sync"

	"github.com/ddt-go/ddt/label"
)

// Distributed runs each Ranges* call over P channel-based peers standing
// in for message-passing ranks: tile index i always runs on peer i%P,
// mirroring the ownership rule a real MPI deployment would use, but
// communicating over in-process buffered channels rather than a network
// transport (a real transport is an explicit non-goal of this module).
type Distributed struct {
	P   int
	Ctx context.Context
}

var _ Scheduler = Distributed{}

// NewDistributed returns a Distributed scheduler with p peers.
func NewDistributed(p int, ctx context.Context) Distributed {
	if p < 1 {
		p = 1
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return Distributed{P: p, Ctx: ctx}
}

func (s Distributed) owner(t label.Index) int {
	m := int(t) % s.P
	if m < 0 {
		m += s.P
	}
	return m
}

// dispatch runs work(t) for every tile in tiles, routed to the channel
// owned by owner(t), and waits for every peer to drain its channel.
func (s Distributed) dispatch(tiles []label.Index, work func(label.Index)) {
	chans := make([]chan label.Index, s.P)
	for i := range chans {
		chans[i] = make(chan label.Index, len(tiles))
	}
	for _, t := range tiles {
		chans[s.owner(t)] <- t
	}
	for _, ch := range chans {
		close(ch)
	}

	var wg sync.WaitGroup
	wg.Add(s.P)
	for i := 0; i < s.P; i++ {
		go func(ch chan label.Index) {
			defer wg.Done()
			for t := range ch {
				select {
				case <-s.Ctx.Done():
					return
				default:
				}
				work(t)
			}
		}(chans[i])
	}
	wg.Wait()
}

func (s Distributed) RangesTransform(tiles []label.Index, fn func(label.Index) error) error {
	var mu sync.Mutex
	var firstErr error
	s.dispatch(tiles, func(t label.Index) {
		if err := fn(t); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}
	})
	return firstErr
}

func (s Distributed) RangesTransformReduce(tiles []label.Index, fn func(label.Index) (any, error), reduce func(acc, result any) any, zero any) (any, error) {
	var mu sync.Mutex
	acc := zero
	var firstErr error
	s.dispatch(tiles, func(t label.Index) {
		r, err := fn(t)
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

func (s Distributed) RangesReduce(tiles []label.Index, fn func(label.Index) (any, error), reduce func(acc, result any) any, zero any) (any, error) {
	return s.RangesTransformReduce(tiles, fn, reduce, zero)
}

func (s Distributed) RangesJoinTransform(tilesA, tilesB []label.Index, fn func(label.Index) error) error {
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

// RangesForEachUntilFixpoint runs full passes over tiles: each peer's
// per-tile round results are OR-ed into one mutex-guarded "did anyone do
// work" flag, and the next pass starts only after every peer has drained
// its channel for the current one.
func (s Distributed) RangesForEachUntilFixpoint(tiles []label.Index, round func(label.Index) (bool, error)) error {
	if len(tiles) == 0 {
		return nil
	}
	for {
		var mu sync.Mutex
		anyWork := false
		var firstErr error
		s.dispatch(tiles, func(t label.Index) {
			did, err := round(t)
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
