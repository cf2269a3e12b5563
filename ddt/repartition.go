package ddt

import (
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/messaging"
	"github.com/ddt-go/ddt/partition"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/scheduler"
	"github.com/ddt-go/ddt/splay"
	"github.com/ddt-go/ddt/tile"
)

// Repartition reads every (point, label) pair from src, re-assigns each
// point to a tile under newPartitioner, and rebuilds the triangulation
// under the new assignment. Each reassigned point carries every point
// that was its finite neighbor under the old triangulation along with
// it into its new tile's seed set (each still labeled with its own new
// tile, not the destination's), so a tile's boundary neighborhood is
// represented again immediately rather than rediscovered from scratch
// over several SPLAY rounds. Old tiles are cleared only after every
// point's old neighborhood has been read. sched drives the phases
// (INSERT of the seeds, then BROADCAST/SPLAY/FINALIZE) that run afterward,
// mirroring spec's partition(new_partitioner, source, scheduler).
func (d *Distributed) Repartition(newPartitioner partition.Partitioner, src partition.Source, sched scheduler.Scheduler) error {
	oldTiles := make(map[label.Index]*tile.Triangulation)
	for idx := range d.tiles {
		if slot, ok := d.Container.Find(idx); ok && slot.Tile != nil {
			oldTiles[idx] = slot.Tile
		}
	}

	targets := make(map[label.Index][]messaging.Item)
	addItem := func(dst, ownLbl label.Index, p point.Point) {
		targets[dst] = append(targets[dst], messaging.Item{P: p, Label: ownLbl})
	}

	for {
		p, oldLbl, ok := src.Next()
		if !ok {
			break
		}
		newLbl := newPartitioner.Assign(p)
		addItem(newLbl, newLbl, p)

		old, ok := oldTiles[oldLbl]
		if !ok {
			continue
		}
		v, found := findVertexByPoint(old, p)
		if !found {
			continue
		}
		adj, err := old.Complex.AdjacentVertices(v)
		if err != nil {
			return err
		}
		for _, u := range adj {
			if old.Complex.IsInfiniteVertex(u) {
				continue
			}
			q, err := old.Complex.PointOf(u)
			if err != nil {
				return err
			}
			addItem(newLbl, newPartitioner.Assign(q), q)
		}
	}

	for idx, t := range oldTiles {
		t.Complex.Clear()
		_ = d.Container.Erase(idx)
	}
	d.tiles = make(map[label.Index]bool)

	for dst, items := range targets {
		d.noteTile(dst)
		for _, it := range items {
			d.noteTile(it.Label)
		}
		d.Hub.SendOne(dst, map[label.Index][]messaging.Item{dst: items})
	}

	eng := splay.New(d.Tiles(), d.Container, d.Hub, sched, d.Log)
	return eng.Run(nil)
}

func findVertexByPoint(t *tile.Triangulation, p point.Point) (kernel.VertexID, bool) {
	for _, v := range t.Complex.VertexIDs() {
		if t.Complex.IsInfiniteVertex(v) {
			continue
		}
		q, err := t.Complex.PointOf(v)
		if err != nil {
			continue
		}
		if point.Equal(p, q, 0) {
			return v, true
		}
	}
	return 0, false
}
