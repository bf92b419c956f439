package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isomatch/isomatch/match"
)

func TestBitmat_SetGetClear(t *testing.T) {
	b, err := match.NewBitmat(3, 70)
	require.NoError(t, err)

	require.False(t, b.Get(1, 65))
	b.Set(1, 65)
	require.True(t, b.Get(1, 65))
	require.False(t, b.Get(1, 64), "neighbouring bit untouched")
	require.False(t, b.Get(0, 65), "other rows untouched")
	require.Equal(t, 1, b.Count())

	b.Clear(1, 65)
	require.False(t, b.Get(1, 65))
	require.Equal(t, 0, b.Count())
}

func TestBitmat_SetAllMasksTail(t *testing.T) {
	// 70 columns leave 58 unused bits in the second word of each row; Count
	// over whole words only stays exact if SetAll leaves those at zero.
	b, err := match.NewBitmat(4, 70)
	require.NoError(t, err)
	b.SetAll()
	require.Equal(t, 4*70, b.Count())
	for i := 0; i < 4; i++ {
		require.Equal(t, 70, b.CountRow(i))
	}
}

func TestBitmat_RowIndicesAscending(t *testing.T) {
	b, err := match.NewBitmat(2, 130)
	require.NoError(t, err)
	for _, j := range []int{129, 0, 64, 63, 65} {
		b.Set(0, j)
	}
	require.Equal(t, []int{0, 63, 64, 65, 129}, b.RowIndices(0))
	require.Empty(t, b.RowIndices(1))
}

func TestBitmat_RowKey(t *testing.T) {
	b, err := match.NewBitmat(3, 100)
	require.NoError(t, err)
	b.Set(0, 3)
	b.Set(0, 99)
	b.Set(1, 3)
	b.Set(1, 99)
	b.Set(2, 3)

	require.Equal(t, b.RowKey(0), b.RowKey(1))
	require.NotEqual(t, b.RowKey(0), b.RowKey(2))
}

func TestBitmat_CloneIsIndependent(t *testing.T) {
	b, err := match.NewBitmat(2, 10)
	require.NoError(t, err)
	b.Set(0, 5)

	c := b.Clone()
	require.True(t, b.Equal(c))

	c.Set(1, 7)
	require.False(t, b.Get(1, 7))
	require.False(t, b.Equal(c))
}

func TestBitmat_Equal(t *testing.T) {
	a, err := match.NewBitmat(2, 10)
	require.NoError(t, err)
	b, err := match.NewBitmat(2, 11)
	require.NoError(t, err)
	require.False(t, a.Equal(b), "shape mismatch")
	require.False(t, a.Equal(nil))
	require.True(t, a.Equal(a))
}

func TestBitmat_Validation(t *testing.T) {
	_, err := match.NewBitmat(-1, 3)
	require.ErrorIs(t, err, match.ErrBitmatShape)
	_, err = match.NewBitmat(3, -1)
	require.ErrorIs(t, err, match.ErrBitmatShape)

	z, err := match.NewBitmat(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, z.Count())

	b, err := match.NewBitmat(2, 2)
	require.NoError(t, err)
	require.Panics(t, func() { b.Get(2, 0) })
	require.Panics(t, func() { b.Set(0, -1) })
	require.Panics(t, func() { b.RowIndices(5) })
}
