package incremental

import (
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/matrix"
	"github.com/ddt-go/ddt/point"
)

// degenerateEps bounds how close to zero a determinant must be before it is
// treated as an unresolved (degenerate) sign rather than a genuine +/-.
// There is no exact-arithmetic fallback here, so this threshold is a
// practical compromise, not a correctness guarantee.
const degenerateEps = 1e-9

// determinant computes det(m) via recursive Laplace expansion along the
// first row. Matrices here never exceed (D+2)x(D+2) with D in {2,3}, so the
// O(n!) cost is negligible.
func determinant(m *matrix.Dense) (float64, error) {
	n := m.Rows()
	if n != m.Cols() {
		return 0, matrix.ErrDimensionMismatch
	}
	if n == 1 {
		v, err := m.At(0, 0)
		return v, err
	}
	if n == 2 {
		a, _ := m.At(0, 0)
		b, _ := m.At(0, 1)
		c, _ := m.At(1, 0)
		d, _ := m.At(1, 1)
		return a*d - b*c, nil
	}

	var det float64
	cols := make([]int, n)
	for i := range cols {
		cols[i] = i
	}
	rows := make([]int, n-1)
	for i := 0; i < n-1; i++ {
		rows[i] = i + 1
	}
	sign := 1.0
	for j := 0; j < n; j++ {
		a0j, _ := m.At(0, j)
		if a0j != 0 {
			minorCols := make([]int, 0, n-1)
			for _, c := range cols {
				if c != j {
					minorCols = append(minorCols, c)
				}
			}
			minor, err := m.Induced(rows, minorCols)
			if err != nil {
				return 0, err
			}
			sub, err := determinant(minor)
			if err != nil {
				return 0, err
			}
			det += sign * a0j * sub
		}
		sign = -sign
	}
	return det, nil
}

// signOf returns -1, 0 or +1 for v within degenerateEps of zero.
func signOf(v float64) int {
	switch {
	case v > degenerateEps:
		return 1
	case v < -degenerateEps:
		return -1
	default:
		return 0
	}
}

// orientSign computes the sign of the orientation determinant for D+1
// points in D-dimensional space: the (D+1)x(D+1) matrix with rows
// [1, p_i[0], ..., p_i[D-1]].
func orientSign(pts []point.Point) (int, error) {
	n := len(pts)
	d := n - 1
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return 0, err
	}
	for i, p := range pts {
		if len(p) != d {
			return 0, point.ErrDimensionMismatch
		}
		_ = m.Set(i, 0, 1)
		for j := 0; j < d; j++ {
			_ = m.Set(i, j+1, p[j])
		}
	}
	det, err := determinant(m)
	if err != nil {
		return 0, err
	}
	s := signOf(det)
	if s == 0 {
		return 0, kernel.ErrDegenerate
	}
	return s, nil
}

// inSphereSign computes the sign of the lifted in-sphere determinant for
// D+2 points in D-dimensional space: rows [p_i..., |p_i|^2, 1]. By
// convention (paired with orientSign's row layout), a positive result means
// the last point lies inside the sphere through the first D+1 when those
// are positively oriented (orientSign > 0); the sign flips with their
// orientation.
func inSphereSign(pts []point.Point) (int, error) {
	n := len(pts)
	d := n - 2
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return 0, err
	}
	for i, p := range pts {
		if len(p) != d {
			return 0, point.ErrDimensionMismatch
		}
		var sq float64
		for j := 0; j < d; j++ {
			_ = m.Set(i, j, p[j])
			sq += p[j] * p[j]
		}
		_ = m.Set(i, d, sq)
		_ = m.Set(i, d+1, 1)
	}
	det, err := determinant(m)
	if err != nil {
		return 0, err
	}
	s := signOf(det)
	if s == 0 {
		return 0, kernel.ErrDegenerate
	}
	// With this column layout the raw determinant is positive for an
	// inside point only when D is even; flip it for odd D.
	if d%2 == 1 {
		s = -s
	}
	return s, nil
}
