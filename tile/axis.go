package tile

import "github.com/ddt-go/ddt/kernel"

// AxisExtremePoints returns up to 2D distinct local vertices attaining the
// per-axis min/max among this tile's local-only finite vertices. These are
// the points broadcast to every other tile so no tile's triangulation can
// have an undetected hole at its boundary with the global hull.
func (t *Triangulation) AxisExtremePoints() ([]kernel.VertexID, error) {
	dim := t.Complex.Dimension()
	mins := make([]kernel.VertexID, dim)
	maxs := make([]kernel.VertexID, dim)
	minVals := make([]float64, dim)
	maxVals := make([]float64, dim)
	haveMin := make([]bool, dim)
	haveMax := make([]bool, dim)

	for _, v := range t.Complex.VertexIDs() {
		if !t.VertexIsLocal(v) {
			continue
		}
		p, err := t.Complex.PointOf(v)
		if err != nil {
			return nil, err
		}
		for axis := 0; axis < dim; axis++ {
			c := p[axis]
			if !haveMin[axis] || c < minVals[axis] {
				minVals[axis], mins[axis], haveMin[axis] = c, v, true
			}
			if !haveMax[axis] || c > maxVals[axis] {
				maxVals[axis], maxs[axis], haveMax[axis] = c, v, true
			}
		}
	}

	seen := make(map[kernel.VertexID]bool, 2*dim)
	var out []kernel.VertexID
	for axis := 0; axis < dim; axis++ {
		if haveMin[axis] && !seen[mins[axis]] {
			seen[mins[axis]] = true
			out = append(out, mins[axis])
		}
		if haveMax[axis] && !seen[maxs[axis]] {
			seen[maxs[axis]] = true
			out = append(out, maxs[axis])
		}
	}
	return out, nil
}
