package partition

import (
	"math/rand"

	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
)

// CoordinateFn produces one coordinate value given an RNG source, the
// same "distribution generator" shape the teacher's edge-weight
// generators use, generalized from a single scalar weight to one
// coordinate of a D-dimensional point.
type CoordinateFn func(rng *rand.Rand) float64

// UniformCoordinateFn samples uniformly in [lo, hi].
func UniformCoordinateFn(lo, hi float64) CoordinateFn {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := hi - lo
	return func(rng *rand.Rand) float64 {
		if span == 0 {
			return lo
		}
		return lo + rng.Float64()*span
	}
}

// RandomPointSet is a Source generating n random points of dimension dim,
// each coordinate drawn from its CoordinateFn, each point assigned a tile
// by part.
type RandomPointSet struct {
	part  Partitioner
	coord CoordinateFn
	dim   int
	n     int
	rng   *rand.Rand

	emitted int
}

var _ Source = (*RandomPointSet)(nil)

// NewRandomPointSet returns a RandomPointSet of n points in dim
// dimensions, coordinates drawn from coord (UniformCoordinateFn(-extent,
// extent) is the usual choice), assigned to tiles by part, seeded by
// seed for reproducibility.
func NewRandomPointSet(n, dim int, coord CoordinateFn, part Partitioner, seed int64) *RandomPointSet {
	return &RandomPointSet{
		part:  part,
		coord: coord,
		dim:   dim,
		n:     n,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Next generates the next random point, or ok == false once n points
// have been produced.
func (r *RandomPointSet) Next() (point.Point, label.Index, bool) {
	if r.emitted >= r.n {
		return nil, 0, false
	}
	r.emitted++
	p := make(point.Point, r.dim)
	for i := range p {
		p[i] = r.coord(r.rng)
	}
	return p, r.part.Assign(p), true
}
