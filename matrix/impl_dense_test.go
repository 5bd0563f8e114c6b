// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %dx%d", tc.r, tc.c)
	}
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, int64(6), MustAt(t, m, 1, 2))

	_, err := matrix.NewDenseFromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 2)

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 7), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 1, -9))
	assert.Equal(t, int64(-9), MustAt(t, m, 1, 1))
}

func TestDense_CloneIndependent(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]int64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.True(t, m.Equal(cp))

	require.NoError(t, cp.Set(0, 0, 100))
	assert.Equal(t, int64(1), MustAt(t, m, 0, 0))
	assert.False(t, m.Equal(cp))
}

func TestDense_EqualShapeAndNil(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 4)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	var n1, n2 *matrix.Dense
	assert.True(t, n1.Equal(n2))
}

func TestDense_StringAndRows2D(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]int64{{19, 22}, {43, -50}})
	assert.Equal(t, "[19 22]\n[43 -50]\n", m.String())

	rows := m.Rows2D()
	rows[0][0] = 0 // must not alias
	assert.Equal(t, int64(19), MustAt(t, m, 0, 0))
	assert.Equal(t, [][]int64{{0, 22}, {43, -50}}, rows)
}

func TestDense_ViewWritesThrough(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 4, 4)
	v, err := m.View(2, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Rows())
	assert.Equal(t, 3, v.Cols())
	r0, c0 := v.Offset()
	assert.Equal(t, [2]int{2, 1}, [2]int{r0, c0})
	assert.Same(t, m, v.Base())

	require.NoError(t, v.Set(1, 2, 42))
	assert.Equal(t, int64(42), MustAt(t, m, 3, 3))
	assert.Equal(t, int64(42), MustAt(t, v, 1, 2))

	_, err = v.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(0, 3, 1), matrix.ErrOutOfRange)
}

func TestDense_ViewBadWindow(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 4, 4)
	for _, w := range [][4]int{{-1, 0, 1, 1}, {0, 0, 0, 1}, {3, 0, 2, 1}, {0, 2, 1, 3}} {
		_, err := m.View(w[0], w[1], w[2], w[3])
		require.ErrorIs(t, err, matrix.ErrBadShape, "window %v", w)
	}
}

func TestView_CopyFrom(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 3, 3)
	v, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)

	require.NoError(t, v.CopyFrom(MustRows(t, [][]int64{{1, 2}, {3, 4}})))
	assert.Equal(t, [][]int64{{0, 0, 0}, {0, 1, 2}, {0, 3, 4}}, m.Rows2D())

	require.ErrorIs(t, v.CopyFrom(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, v.CopyFrom(nil), matrix.ErrNilMatrix)
}
