package ddt

import (
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/messaging"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/splay"
)

// InsertPoint inserts p into tile t's local complex and runs one splaying
// round seeded by the new vertex's neighbors, per spec.md's single-point
// insert path.
func (d *Distributed) InsertPoint(p point.Point, t label.Index) error {
	d.noteTile(t)
	slot, err := d.Container.TryEmplace(t)
	if err != nil {
		return err
	}

	v, created, err := slot.Tile.Insert(p, t, kernel.NoCell)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	msgs, err := slot.Tile.FiniteNeighbors([]kernel.VertexID{v})
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return nil
	}
	targets := make(map[label.Index][]messaging.Item)
	for _, m := range msgs {
		d.noteTile(m.To)
		targets[m.To] = append(targets[m.To], messaging.Item{P: p, Label: t})
	}
	d.Hub.SendOne(t, targets)

	return d.runSplayRound(t)
}

// runSplayRound drives one shared-memory SPLAY pass over every known
// tile, starting from whatever is already queued in the Hub.
func (d *Distributed) runSplayRound(_ label.Index) error {
	eng := splay.New(d.Tiles(), d.Container, d.Hub, d.Sched, d.Log)
	return eng.SplayOnly()
}

// InsertSet runs all four splaying phases (INSERT/BROADCAST/SPLAY/FINALIZE)
// over a freshly-partitioned point set.
func (d *Distributed) InsertSet(points map[label.Index][]point.Point) error {
	for idx := range points {
		d.noteTile(idx)
	}
	eng := splay.New(d.Tiles(), d.Container, d.Hub, d.Sched, d.Log)
	return eng.Run(points)
}
