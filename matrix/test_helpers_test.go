// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic At-based fallback path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustRows builds a Dense from a literal or fails the test.
func MustRows(tb testing.TB, rows [][]int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustRandom builds a seeded n×n random matrix with entries in [-50, 50).
func MustRandom(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewRandom(n, 100, matrix.RNGFromSeed(seed))
	require.NoError(tb, err)
	shift := MustDense(tb, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(tb, shift.Set(i, j, 50))
		}
	}
	out, err := matrix.Sub(m, shift)
	require.NoError(tb, err)

	return out
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) int64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// naiveProduct is an independent reference product over full matrices.
func naiveProduct(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	n := a.Rows()
	out := MustDense(tb, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s int64
			for k := 0; k < n; k++ {
				s += MustAt(tb, a, i, k) * MustAt(tb, b, k, j)
			}
			require.NoError(tb, out.Set(i, j, s))
		}
	}

	return out
}
