package partition

import (
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
)

// Grid is an axis-aligned grid Partitioner: it divides Bbox into
// Counts[i] equal slabs along axis i and linearizes the resulting cell
// coordinate into one tile index.
type Grid struct {
	Bbox   point.Bbox
	Counts []int
}

var _ Partitioner = Grid{}

// NewGrid returns a Grid over bbox with counts[i] tiles along axis i.
func NewGrid(bbox point.Bbox, counts []int) Grid {
	return Grid{Bbox: bbox, Counts: append([]int(nil), counts...)}
}

// Assign buckets p into its grid cell and linearizes that cell into a
// tile index (row-major over Counts). Points outside Bbox are clamped to
// the nearest edge cell rather than rejected.
func (g Grid) Assign(p point.Point) label.Index {
	idx := 0
	stride := 1
	for axis := 0; axis < len(g.Counts); axis++ {
		n := g.Counts[axis]
		if n < 1 {
			n = 1
		}
		lo, hi := g.Bbox.Lo[axis], g.Bbox.Hi[axis]
		bucket := 0
		if hi > lo {
			frac := (p[axis] - lo) / (hi - lo)
			bucket = int(frac * float64(n))
			if bucket < 0 {
				bucket = 0
			}
			if bucket >= n {
				bucket = n - 1
			}
		}
		idx += bucket * stride
		stride *= n
	}
	return label.Index(idx)
}

// NumTiles returns the total number of distinct tile indices Assign can
// produce.
func (g Grid) NumTiles() int {
	n := 1
	for _, c := range g.Counts {
		if c < 1 {
			c = 1
		}
		n *= c
	}
	return n
}
