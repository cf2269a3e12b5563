package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/matrix"
)

func dense(t *testing.T, rows, cols int, vals ...float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	idx := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, d.Set(i, j, vals[idx]))
			idx++
		}
	}
	return d
}

func TestAddSub(t *testing.T) {
	a := dense(t, 2, 2, 1, 2, 3, 4)
	b := dense(t, 2, 2, 4, 3, 2, 1)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	v, _ := sum.At(0, 0)
	require.Equal(t, 5.0, v)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	v, _ = diff.At(1, 1)
	require.Equal(t, 3.0, v)
}

func TestAddShapeMismatch(t *testing.T) {
	a := dense(t, 2, 2, 1, 2, 3, 4)
	b, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	_, err = matrix.Add(a, b)
	require.Error(t, err)
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}

func TestMul(t *testing.T) {
	a := dense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := dense(t, 3, 2, 7, 8, 9, 10, 11, 12)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())

	v, _ := c.At(0, 0)
	require.Equal(t, 58.0, v) // 1*7+2*9+3*11
	v, _ = c.At(1, 1)
	require.Equal(t, 154.0, v) // 4*8+5*10+6*12
}

func TestMulDimensionMismatch(t *testing.T) {
	a := dense(t, 2, 2, 1, 2, 3, 4)
	b := dense(t, 3, 2, 1, 2, 3, 4, 5, 6)

	_, err := matrix.Mul(a, b)
	require.Error(t, err)
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}

func TestTranspose(t *testing.T) {
	a := dense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	v, _ := tr.At(2, 1)
	require.Equal(t, 6.0, v)
}

func TestScale(t *testing.T) {
	a := dense(t, 1, 3, 1, 2, 3)

	scaled, err := matrix.Scale(a, 2.0)
	require.NoError(t, err)
	v, _ := scaled.At(0, 2)
	require.Equal(t, 6.0, v)
}

func TestDenseOutOfRange(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = d.At(5, 0)
	require.True(t, errors.Is(err, matrix.ErrOutOfRange))

	err = d.Set(-1, 0, 1.0)
	require.True(t, errors.Is(err, matrix.ErrOutOfRange))
}

func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 2)
	require.True(t, errors.Is(err, matrix.ErrInvalidDimensions))
}

func TestCloneIsIndependent(t *testing.T) {
	a := dense(t, 1, 1, 1)
	clone := a.Clone()
	require.NoError(t, a.Set(0, 0, 99))
	v, _ := clone.At(0, 0)
	require.Equal(t, 1.0, v)
}
