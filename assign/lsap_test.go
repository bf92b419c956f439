package assign_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isomatch/isomatch/assign"
	"github.com/isomatch/isomatch/matrix"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return d
}

func TestSolve_Square(t *testing.T) {
	a, err := assign.Solve(dense(t, [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, a.Rows)
	require.Equal(t, []int{1, 0, 2}, a.Cols)
	require.Equal(t, 5.0, a.Total)
}

func TestSolve_ConstantMatrixIsIdentity(t *testing.T) {
	a, err := assign.Solve(dense(t, [][]float64{
		{7, 7, 7},
		{7, 7, 7},
		{7, 7, 7},
	}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, a.Cols)
	require.Equal(t, 21.0, a.Total)
}

func TestSolve_Rectangular(t *testing.T) {
	// More columns than rows.
	a, err := assign.Solve(dense(t, [][]float64{
		{1, 10, 10},
		{10, 1, 10},
	}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, a.Rows)
	require.Equal(t, []int{0, 1}, a.Cols)
	require.Equal(t, 2.0, a.Total)

	// More rows than columns: only min(r, c) pairs, ascending rows.
	a, err = assign.Solve(dense(t, [][]float64{
		{1, 10},
		{10, 1},
		{5, 5},
	}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, a.Rows)
	require.Equal(t, []int{0, 1}, a.Cols)
	require.Equal(t, 2.0, a.Total)
}

func TestSolve_ForbiddenPairs(t *testing.T) {
	inf := math.Inf(1)
	a, err := assign.Solve(dense(t, [][]float64{
		{inf, 1},
		{1, inf},
	}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, a.Cols)
	require.Equal(t, 2.0, a.Total)
}

func TestSolve_Infeasible(t *testing.T) {
	inf := math.Inf(1)

	_, err := assign.Solve(dense(t, [][]float64{
		{inf, inf},
		{1, 2},
	}))
	require.ErrorIs(t, err, assign.ErrInfeasible)

	// Both rows forced onto the same single viable column.
	_, err = assign.Solve(dense(t, [][]float64{
		{inf, 1},
		{inf, 2},
	}))
	require.ErrorIs(t, err, assign.ErrInfeasible)
}

func TestSolve_InputValidation(t *testing.T) {
	_, err := assign.Solve(nil)
	require.ErrorIs(t, err, assign.ErrBadShape)

	_, err = assign.Solve(dense(t, [][]float64{{1, math.Inf(-1)}}))
	require.ErrorIs(t, err, assign.ErrInvalidCost)

	_, err = assign.Solve(dense(t, [][]float64{{1, math.NaN()}}))
	require.ErrorIs(t, err, assign.ErrInvalidCost)
}

func TestSolve_EmptyShapes(t *testing.T) {
	empty, err := matrix.NewDense(0, 4)
	require.NoError(t, err)
	a, err := assign.Solve(empty)
	require.NoError(t, err)
	require.Empty(t, a.Rows)
	require.Zero(t, a.Total)
}
