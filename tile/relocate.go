package tile

import (
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/point"
)

// RelocateVertex finds the vertex in target's complex carrying the same
// point as v in t. Two tiles never share a kernel.VertexID space, so the
// only stable cross-tile identity for a vertex is its coordinates.
func (t *Triangulation) RelocateVertex(v kernel.VertexID, target *Triangulation) (kernel.VertexID, error) {
	p, err := t.Complex.PointOf(v)
	if err != nil {
		return 0, err
	}
	for _, u := range target.Complex.VertexIDs() {
		q, err := target.Complex.PointOf(u)
		if err != nil {
			return 0, err
		}
		if point.Equal(p, q, 0) {
			return u, nil
		}
	}
	return 0, ErrNoRelocationTarget
}

// RelocateCell finds the cell in target's complex holding the same
// (unordered) vertex-coordinate set as c, with no orientation requirement
// (per spec.md §4.1, only facet relocation demands orientation agreement).
func (t *Triangulation) RelocateCell(c kernel.CellID, target *Triangulation) (kernel.CellID, error) {
	pts, err := t.cellPoints(c)
	if err != nil {
		return kernel.NoCell, err
	}
	for _, u := range target.Complex.CellIDs() {
		qts, err := target.cellPoints(u)
		if err != nil {
			return kernel.NoCell, err
		}
		if samePointSet(pts, qts) {
			return u, nil
		}
	}
	return kernel.NoCell, ErrNoRelocationTarget
}

// RelocateFacet finds the facet (cell,vertexIndex) pair in target's
// complex matching the facet opposite vertex index i of cell c, requiring
// the same covertex and an orientation-preserving (even-sign) vertex
// permutation match — the REDESIGN FLAG resolution: the source's facet
// orientation comparison must not silently accept a reversed match.
func (t *Triangulation) RelocateFacet(c kernel.CellID, i int, target *Triangulation) (kernel.CellID, int, error) {
	verts, err := t.Complex.CellVertices(c)
	if err != nil {
		return kernel.NoCell, -1, err
	}
	if i < 0 || i >= len(verts) {
		return kernel.NoCell, -1, kernel.ErrBadIndex
	}
	srcPts, err := t.pointsOf(verts)
	if err != nil {
		return kernel.NoCell, -1, err
	}

	reversed := false
	for _, u := range target.Complex.CellIDs() {
		tverts, err := target.Complex.CellVertices(u)
		if err != nil {
			return kernel.NoCell, -1, err
		}
		for j := range tverts {
			tPts, err := target.pointsOf(tverts)
			if err != nil {
				return kernel.NoCell, -1, err
			}
			if !samePointSet(without(srcPts, i), without(tPts, j)) {
				continue
			}
			if !point.Equal(srcPts[i], tPts[j], 0) {
				continue // covertex must match too
			}
			if !evenPermutation(srcPts, tPts) {
				reversed = true
				continue // orientation-reversed: rejected, not accepted
			}
			return u, j, nil
		}
	}
	if reversed {
		return kernel.NoCell, -1, ErrOrientationMismatch
	}
	return kernel.NoCell, -1, ErrNoRelocationTarget
}

func (t *Triangulation) cellPoints(c kernel.CellID) ([]point.Point, error) {
	verts, err := t.Complex.CellVertices(c)
	if err != nil {
		return nil, err
	}
	return t.pointsOf(verts)
}

func (t *Triangulation) pointsOf(verts []kernel.VertexID) ([]point.Point, error) {
	pts := make([]point.Point, len(verts))
	for i, v := range verts {
		if t.Complex.IsInfiniteVertex(v) {
			pts[i] = nil
			continue
		}
		p, err := t.Complex.PointOf(v)
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}

func without(pts []point.Point, i int) []point.Point {
	out := make([]point.Point, 0, len(pts)-1)
	for j, p := range pts {
		if j != i {
			out = append(out, p)
		}
	}
	return out
}

func samePointSet(a, b []point.Point) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, p := range a {
		found := false
		for j, q := range b {
			if used[j] {
				continue
			}
			if pointOrNilEqual(p, q) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func pointOrNilEqual(p, q point.Point) bool {
	if p == nil || q == nil {
		return p == nil && q == nil
	}
	return point.Equal(p, q, 0)
}

// evenPermutation reports whether the permutation taking a's point order
// to b's point order (matched by coordinate equality) is even — the
// orientation-preserving test RelocateFacet requires.
func evenPermutation(a, b []point.Point) bool {
	n := len(a)
	perm := make([]int, n)
	usedB := make([]bool, n)
	for i, p := range a {
		for j, q := range b {
			if usedB[j] || !pointOrNilEqual(p, q) {
				continue
			}
			perm[i] = j
			usedB[j] = true
			break
		}
	}
	return permutationSign(perm) > 0
}

// permutationSign returns +1 for an even permutation, -1 for odd, via
// selection-sort inversion counting (n is always small: D+1 vertices).
func permutationSign(perm []int) int {
	p := append([]int(nil), perm...)
	sign := 1
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[j] < p[i] {
				p[i], p[j] = p[j], p[i]
				sign = -sign
			}
		}
	}
	return sign
}
