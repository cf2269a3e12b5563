package incremental

import (
	"math"
	"sort"

	"github.com/ddt-go/ddt/kernel"
)

// SpatialSort reorders ids for insertion locality via a Morton (Z-order)
// code over each point's coordinates, normalized against the complex's
// current bounding box. A true Hilbert curve gives slightly better locality
// in 2D/3D but does not generalize to arbitrary D as directly as bit
// interleaving does, and this kernel supports any D, so Morton order is
// the approximation used here.
func (c *Complex) SpatialSort(ids []kernel.VertexID) []kernel.VertexID {
	out := make([]kernel.VertexID, len(ids))
	copy(out, ids)
	if len(out) < 2 {
		return out
	}

	box := c.bbox
	if len(box.Lo) == 0 {
		return out
	}

	const bits = 16
	const scale = float64(uint64(1) << bits)

	key := func(v kernel.VertexID) uint64 {
		p, ok := c.points[v]
		if !ok {
			return 0
		}
		var k uint64
		for axis := 0; axis < c.dim; axis++ {
			span := box.Hi[axis] - box.Lo[axis]
			var t float64
			if span > 0 {
				t = (p[axis] - box.Lo[axis]) / span
			}
			if t < 0 {
				t = 0
			}
			if t > 1 {
				t = 1
			}
			coord := uint64(math.Floor(t * (scale - 1)))
			k |= spreadBits(coord, c.dim) << uint(axis)
		}
		return k
	}

	sort.Slice(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out
}

// spreadBits interleaves the bits of v with (stride-1) zero bits, so that
// ORing stride shifted copies for each axis produces a Morton code.
func spreadBits(v uint64, stride int) uint64 {
	var out uint64
	for i := 0; i < 21 && v != 0; i++ {
		if v&1 != 0 {
			out |= uint64(1) << uint(i*stride)
		}
		v >>= 1
	}
	return out
}
