// SPDX-License-Identifier: MIT
// Package matrix provides the integer linear-algebra primitives used by the
// Strassen engine: element-wise sums, block extraction and recombination, and
// classical multiplication over offset windows.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opCombine   = "Combine"
	opClassical = "MultiplyClassical"
	opExtract   = "ExtractSubmatrix"
	opQuadrants = "CombineQuadrants"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// unwrapWindow resolves a Dense or View operand to its backing Dense plus the
// absolute offset of (r0, c0). ok is false for other Matrix implementations.
func unwrapWindow(m Matrix, r0, c0 int) (d *Dense, row, col int, ok bool) {
	switch t := m.(type) {
	case *Dense:
		return t, r0, c0, true
	case *View:
		return t.base, t.r0 + r0, t.c0 + c0, true
	}

	return nil, 0, 0, false
}

// MultiplyClassical computes the size×size product of the window of A at
// (rowA, colA) and the window of B at (rowB, colB) with the direct triple loop.
//
// Implementation:
//   - Stage 1: validate both windows lie inside their matrices.
//   - Stage 2: fast path on the backing buffers when both operands are Dense
//     or View; otherwise bounds-checked At.
//   - Accumulation order is i (row), j (column), k (inner product).
//
// Behavior highlights:
//   - Result is freshly allocated; operands are never mutated.
//   - int64 arithmetic wraps on overflow.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (window outside the operand).
//
// Complexity:
//   - Time O(size³), Space O(size²).
func MultiplyClassical(a, b Matrix, rowA, colA, rowB, colB, size int) (*Dense, error) {
	if err := ValidateWindow(a, rowA, colA, size, size); err != nil {
		return nil, matrixErrorf(opClassical, fmt.Errorf("A: %w", err))
	}
	if err := ValidateWindow(b, rowB, colB, size, size); err != nil {
		return nil, matrixErrorf(opClassical, fmt.Errorf("B: %w", err))
	}

	res := newSquareUnchecked(size)
	da, ra, ca, okA := unwrapWindow(a, rowA, colA)
	db, rb, cb, okB := unwrapWindow(b, rowB, colB)
	if okA && okB {
		multiplyWindows(res.data, da, ra, ca, db, rb, cb, size)
		return res, nil
	}

	// Generic fallback through At.
	var i, j, k int
	var av, bv, sum int64
	var err error
	for i = 0; i < size; i++ {
		for j = 0; j < size; j++ {
			sum = 0
			for k = 0; k < size; k++ {
				if av, err = a.At(rowA+i, colA+k); err != nil {
					return nil, matrixErrorf(opClassical, err)
				}
				if bv, err = b.At(rowB+k, colB+j); err != nil {
					return nil, matrixErrorf(opClassical, err)
				}
				sum += av * bv
			}
			res.data[i*size+j] = sum
		}
	}

	return res, nil
}

// multiplyWindows is the flat-buffer kernel behind MultiplyClassical.
// out must have length size*size.
func multiplyWindows(out []int64, a *Dense, ra, ca int, b *Dense, rb, cb, size int) {
	var i, j, k, rowA int
	var sum int64
	for i = 0; i < size; i++ {
		rowA = (ra+i)*a.c + ca
		for j = 0; j < size; j++ {
			sum = 0
			for k = 0; k < size; k++ {
				sum += a.data[rowA+k] * b.data[(rb+k)*b.c+cb+j]
			}
			out[i*size+j] = sum
		}
	}
}
