// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
)

func TestAdd_FastAndFallback_Match(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]int64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int64{{10, -20}, {30, 40}})

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)

	want := [][]int64{{11, -18}, {33, 44}}
	assert.Equal(t, want, fast.Rows2D())
	assert.True(t, fast.Equal(slow))
}

func TestSub_FastAndFallback_Match(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]int64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int64{{10, -20}, {30, 40}})

	fast, err := matrix.Sub(a, b)
	require.NoError(t, err)
	slow, err := matrix.Sub(a, hide{b})
	require.NoError(t, err)

	assert.Equal(t, [][]int64{{-9, 22}, {-27, -36}}, fast.Rows2D())
	assert.True(t, fast.Equal(slow))
}

func TestAddSub_InverseLaw(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2, 8, 32} {
		a := MustRandom(t, n, int64(n))
		b := MustRandom(t, n, int64(n)+99)
		sum, err := matrix.Add(a, b)
		require.NoError(t, err)
		back, err := matrix.Sub(sum, b)
		require.NoError(t, err)
		assert.True(t, back.Equal(a), "n=%d", n)
	}
}

func TestAddSub_OperandsUntouched(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]int64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int64{{5, 6}, {7, 8}})
	a0, b0 := a.Clone(), b.Clone()
	_, err := matrix.Add(a, b)
	require.NoError(t, err)
	_, err = matrix.Sub(a, b)
	require.NoError(t, err)
	assert.True(t, a.Equal(a0))
	assert.True(t, b.Equal(b0))
}

func TestAdd_Errors(t *testing.T) {
	t.Parallel()
	_, err := matrix.Add(MustDense(t, 2, 2), MustDense(t, 4, 4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdd_OnViews(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]int64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	tl, err := m.View(0, 0, 2, 2)
	require.NoError(t, err)
	br, err := m.View(2, 2, 2, 2)
	require.NoError(t, err)

	sum, err := matrix.Add(tl, br)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{12, 14}, {20, 22}}, sum.Rows2D())
}

func TestCombine(t *testing.T) {
	t.Parallel()
	p1 := MustRows(t, [][]int64{{1, 1}, {1, 1}})
	p4 := MustRows(t, [][]int64{{2, 2}, {2, 2}})
	p5 := MustRows(t, [][]int64{{4, 4}, {4, 4}})
	p7 := MustRows(t, [][]int64{{8, 8}, {8, 8}})

	got, err := matrix.Combine([]*matrix.Dense{p1, p4, p7, p5}, []int64{1, 1, 1, -1})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{7, 7}, {7, 7}}, got.Rows2D())
	assert.Equal(t, int64(1), MustAt(t, p1, 0, 0), "first term must not be mutated")

	neg, err := matrix.Combine([]*matrix.Dense{p1}, []int64{-1})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{-1, -1}, {-1, -1}}, neg.Rows2D())
}

func TestCombine_Errors(t *testing.T) {
	t.Parallel()
	p := MustDense(t, 2, 2)
	_, err := matrix.Combine(nil, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Combine([]*matrix.Dense{p, p}, []int64{1})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Combine([]*matrix.Dense{p, p}, []int64{1, 2})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Combine([]*matrix.Dense{p, MustDense(t, 4, 4)}, []int64{1, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Combine([]*matrix.Dense{p, nil}, []int64{1, 1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
