package splay

import (
	"github.com/ddt-go/ddt/container"
	"github.com/ddt-go/ddt/internal/xlog"
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/messaging"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/scheduler"
	"github.com/ddt-go/ddt/tile"
)

// Engine drives the four-phase splaying protocol over a fixed set of
// tile indices, reading and writing tiles through a Container and
// exchanging points through a Hub.
type Engine struct {
	Tiles     []label.Index
	Container *container.Container
	Hub       *messaging.Hub
	Sched     scheduler.Scheduler
	Log       xlog.Logger
}

// New returns an Engine over tiles, backed by c and hub, running each
// phase through sched. A nil log is valid (xlog.Discard semantics).
func New(tiles []label.Index, c *container.Container, hub *messaging.Hub, sched scheduler.Scheduler, log xlog.Logger) *Engine {
	return &Engine{Tiles: tiles, Container: c, Hub: hub, Sched: sched, Log: log}
}

func (e *Engine) tileOf(idx label.Index) (*tile.Triangulation, error) {
	slot, err := e.Container.TryEmplace(idx)
	if err != nil {
		return nil, err
	}
	return slot.Tile, nil
}

// Run executes INSERT / BROADCAST / SPLAY / FINALIZE over initial, a
// per-tile set of seed points (the distributed point set being inserted).
func (e *Engine) Run(initial map[label.Index][]point.Point) error {
	e.seedInboxes(initial)

	if err := e.phaseInsert(); err != nil {
		return err
	}
	if err := e.phaseBroadcast(); err != nil {
		return err
	}
	if err := e.phaseSplay(); err != nil {
		return err
	}
	return e.phaseFinalize()
}

// SplayOnly runs just the SPLAY phase to fixpoint, for callers (the
// single-point ddt.Distributed.InsertPoint path) that seed the Hub
// themselves rather than going through the full four-phase Run.
func (e *Engine) SplayOnly() error {
	return e.phaseSplay()
}

func (e *Engine) seedInboxes(initial map[label.Index][]point.Point) {
	for idx, pts := range initial {
		items := make([]messaging.Item, len(pts))
		for i, p := range pts {
			items[i] = messaging.Item{P: p, Label: idx}
		}
		e.Hub.SendOne(idx, map[label.Index][]messaging.Item{idx: items})
	}
}

// phaseInsert: each tile pulls its inbox and inserts with simplification
// enabled, no inter-tile communication.
func (e *Engine) phaseInsert() error {
	e.Log.Info("splay: phase INSERT", "tiles", len(e.Tiles))
	return e.Sched.RangesTransform(e.Tiles, func(idx label.Index) error {
		th, err := e.tileOf(idx)
		if err != nil {
			return err
		}
		received := e.Hub.Inbox(idx)
		_, _, err = th.InsertMany(received, false)
		return err
	})
}

// phaseBroadcast: every tile computes its axis-extreme points and
// publishes them to the pool (barrier), then every tile consumes the pool
// from its own cursor and inserts without simplification.
func (e *Engine) phaseBroadcast() error {
	e.Log.Info("splay: phase BROADCAST")
	var all []messaging.Item
	err := e.Sched.RangesTransform(e.Tiles, func(idx label.Index) error {
		th, err := e.tileOf(idx)
		if err != nil {
			return err
		}
		extremes, err := th.AxisExtremePoints()
		if err != nil {
			return err
		}
		for _, v := range extremes {
			p, err := th.Complex.PointOf(v)
			if err != nil {
				return err
			}
			all = append(all, messaging.Item{P: p, Label: idx})
		}
		return nil
	})
	if err != nil {
		return err
	}
	e.Hub.SendAll(all)

	return e.Sched.RangesTransform(e.Tiles, func(idx label.Index) error {
		th, err := e.tileOf(idx)
		if err != nil {
			return err
		}
		// Insert directly: InsertMany would simplify, and broadcast points
		// stay until SPLAY has run.
		for _, it := range e.Hub.BroadcastCursor(idx) {
			if _, _, err := th.Insert(it.P, it.Label, kernel.NoCell); err != nil {
				return err
			}
		}
		return nil
	})
}

// phaseSplay repeats, per tile, "pull inbox, insert_many(report_mixed_only),
// send_one to finite neighbors" until no tile does any work — the
// shared-memory termination variant.
func (e *Engine) phaseSplay() error {
	e.Log.Info("splay: phase SPLAY")
	return e.Sched.RangesForEachUntilFixpoint(e.Tiles, func(idx label.Index) (bool, error) {
		th, err := e.tileOf(idx)
		if err != nil {
			return false, err
		}
		received := e.Hub.Inbox(idx)
		newlyInserted, count, err := th.InsertMany(received, true)
		if err != nil {
			return false, err
		}
		if count == 0 {
			return false, nil
		}

		msgs, err := th.FiniteNeighbors(newlyInserted)
		if err != nil {
			return false, err
		}
		if len(msgs) == 0 {
			return true, nil
		}

		targets := make(map[label.Index][]messaging.Item)
		for _, m := range msgs {
			p, err := th.Complex.PointOf(m.Vertex)
			if err != nil {
				return false, err
			}
			targets[m.To] = append(targets[m.To], messaging.Item{P: p, Label: th.LabelOf(m.Vertex)})
		}
		e.Hub.SendOne(idx, targets)
		return true, nil
	})
}

// phaseFinalize runs finalize() on every tile in parallel.
func (e *Engine) phaseFinalize() error {
	e.Log.Info("splay: phase FINALIZE")
	return e.Sched.RangesTransform(e.Tiles, func(idx label.Index) error {
		th, err := e.tileOf(idx)
		if err != nil {
			return err
		}
		return th.Finalize()
	})
}

