package ddt

import (
	"github.com/ddt-go/ddt/container"
	"github.com/ddt-go/ddt/internal/xlog"
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/messaging"
	"github.com/ddt-go/ddt/scheduler"
)

// Distributed is the distributed Delaunay triangulation: the container of
// (possibly evicted) tiles, the message fabric between them, the
// scheduler that drives per-tile work, and the kernel that builds each
// tile's local complex.
type Distributed struct {
	Kernel    kernel.Kernel
	Container *container.Container
	Hub       *messaging.Hub
	Sched     scheduler.Scheduler
	Log       xlog.Logger

	tiles map[label.Index]bool
}

// New returns an empty Distributed triangulation over an already-built
// Container (its capacity and Serializer are fixed at construction).
func New(k kernel.Kernel, c *container.Container, sched scheduler.Scheduler, log xlog.Logger) *Distributed {
	return &Distributed{
		Kernel:    k,
		Container: c,
		Hub:       messaging.New(),
		Sched:     sched,
		Log:       log,
		tiles:     make(map[label.Index]bool),
	}
}

// Tiles returns every tile index this triangulation has ever seen, known
// or not currently resident.
func (d *Distributed) Tiles() []label.Index {
	out := make([]label.Index, 0, len(d.tiles))
	for idx := range d.tiles {
		out = append(out, idx)
	}
	return out
}

func (d *Distributed) noteTile(idx label.Index) {
	d.tiles[idx] = true
}

// VertexRef names one vertex inside one tile's local complex.
type VertexRef struct {
	Tile   label.Index
	Vertex kernel.VertexID
}

// CellRef names one cell inside one tile's local complex.
type CellRef struct {
	Tile label.Index
	Cell kernel.CellID
}

// FacetRef names one facet (a cell plus the index of the vertex opposite
// it) inside one tile's local complex.
type FacetRef struct {
	Tile  label.Index
	Cell  kernel.CellID
	Index int
}
