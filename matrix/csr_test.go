// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isomatch/isomatch/matrix"
)

// mustAt keeps table assertions terse.
func mustAt(t *testing.T, m *matrix.CSR, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestNewCSR_AccumulatesDuplicates(t *testing.T) {
	// Two parallel a->b edges and one a->a loop.
	m, err := matrix.NewCSR(2, 2, []matrix.Entry{
		{Row: 0, Col: 1, Val: 1},
		{Row: 0, Col: 1, Val: 1},
		{Row: 0, Col: 0, Val: 2.5},
	})
	require.NoError(t, err)

	require.Equal(t, 2, m.NNZ())
	require.Equal(t, 2.0, mustAt(t, m, 0, 1))
	require.Equal(t, 2.5, mustAt(t, m, 0, 0))
	require.Equal(t, 0.0, mustAt(t, m, 1, 0))
}

func TestNewCSR_DropsZeroSums(t *testing.T) {
	m, err := matrix.NewCSR(1, 2, []matrix.Entry{
		{Row: 0, Col: 0, Val: 3},
		{Row: 0, Col: 0, Val: -3},
		{Row: 0, Col: 1, Val: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 1, m.NNZ())
}

func TestNewCSR_Validation(t *testing.T) {
	_, err := matrix.NewCSR(-1, 1, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewCSR(1, 1, []matrix.Entry{{Row: 1, Col: 0, Val: 1}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewCSR(1, 1, []matrix.Entry{{Row: 0, Col: 0, Val: math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestCSR_SumsAndDiagonal(t *testing.T) {
	m, err := matrix.NewCSRFromDense([][]float64{
		{1, 0, 2},
		{0, 3, 0},
		{4, 0, 5},
	})
	require.NoError(t, err)

	require.Equal(t, []float64{3, 3, 9}, m.RowSums())
	require.Equal(t, []float64{5, 3, 7}, m.ColSums())
	require.Equal(t, []float64{1, 3, 5}, m.Diagonal())
}

func TestCSR_TransposeRoundTrip(t *testing.T) {
	src := [][]float64{
		{0, 1, 0, 2},
		{3, 0, 0, 0},
		{0, 0, 0, 4},
	}
	m, err := matrix.NewCSRFromDense(src)
	require.NoError(t, err)

	tr := m.Transpose()
	require.Equal(t, 4, tr.Rows())
	require.Equal(t, 3, tr.Cols())
	for i := range src {
		for j := range src[i] {
			require.Equal(t, src[i][j], mustAt(t, tr, j, i))
		}
	}
}

func TestCSR_AddAndBoolean(t *testing.T) {
	a, err := matrix.NewCSRFromDense([][]float64{{0, 1}, {2, 0}})
	require.NoError(t, err)
	b, err := matrix.NewCSRFromDense([][]float64{{0, -1}, {0, 5}})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, 0.0, mustAt(t, sum, 0, 1)) // cancelled, dropped
	require.Equal(t, 2.0, mustAt(t, sum, 1, 0))
	require.Equal(t, 5.0, mustAt(t, sum, 1, 1))
	require.Equal(t, 2, sum.NNZ())

	mask := a.Boolean()
	require.Equal(t, 1.0, mustAt(t, mask, 0, 1))
	require.Equal(t, 1.0, mustAt(t, mask, 1, 0))

	wrong, err := matrix.NewCSR(1, 2, nil)
	require.NoError(t, err)
	_, err = a.Add(wrong)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestCSR_Submatrix(t *testing.T) {
	m, err := matrix.NewCSRFromDense([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	// Reversed column order must come back re-sorted per row.
	sub, err := m.Submatrix([]int{2, 0}, []int{2, 0})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	require.Equal(t, 2, sub.Cols())
	require.Equal(t, 9.0, mustAt(t, sub, 0, 0))
	require.Equal(t, 7.0, mustAt(t, sub, 0, 1))
	require.Equal(t, 3.0, mustAt(t, sub, 1, 0))
	require.Equal(t, 1.0, mustAt(t, sub, 1, 1))

	_, err = m.Submatrix([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestCSR_RowViewAndDense(t *testing.T) {
	m, err := matrix.NewCSRFromDense([][]float64{{0, 7, 0, 8}})
	require.NoError(t, err)

	cols, vals, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, cols)
	require.Equal(t, []float64{7, 8}, vals)

	d := m.Dense()
	got, err := d.At(0, 3)
	require.NoError(t, err)
	require.Equal(t, 8.0, got)
}
