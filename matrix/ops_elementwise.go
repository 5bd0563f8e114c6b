// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise Add/Sub shared by the Strassen engine (operand sums,
//     quadrant combination) and any caller holding Dense or View operands.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fast-path: single flat walk 0..n-1 when both operands are *Dense.
//   - Fallback: fixed i→j order through bounds-checked At.
//   - One allocation (the result) per call; inputs are never mutated.

package matrix

import "fmt"

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix          (a or b is nil).
//   - ErrDimensionMismatch  (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign int64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			if sign > 0 {
				for idx := range res.data {
					res.data[idx] = da.data[idx] + db.data[idx]
				}
			} else {
				for idx := range res.data {
					res.data[idx] = da.data[idx] - db.data[idx]
				}
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv int64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same contract as Add; Sub(Add(A, B), B) == A for every pair of equal shape.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// addInto accumulates dst += sign*src in place. Both must be same-shape *Dense;
// internal callers guarantee it, so no validation happens here.
func addInto(dst, src *Dense, sign int64) {
	if sign > 0 {
		for idx := range dst.data {
			dst.data[idx] += src.data[idx]
		}
		return
	}
	for idx := range dst.data {
		dst.data[idx] -= src.data[idx]
	}
}

// Combine returns the signed sum Σ signs[k]*terms[k] in a fresh Dense.
// It is the multi-term form of Add/Sub used to assemble Strassen quadrants
// (e.g. P1 + P4 - P5 + P7) with one allocation instead of one per term.
//
// Errors:
//   - ErrBadShape if terms is empty or len(signs) != len(terms), or a sign is not ±1.
//   - ErrNilMatrix, ErrDimensionMismatch from the shape validators.
//
// Complexity:
//   - Time O(k*r*c), Space O(r*c).
func Combine(terms []*Dense, signs []int64) (*Dense, error) {
	if len(terms) == 0 || len(terms) != len(signs) {
		return nil, matrixErrorf(opCombine, ErrBadShape)
	}
	for k, t := range terms {
		if err := ValidateBinarySameShape(terms[0], t); err != nil {
			return nil, matrixErrorf(opCombine, fmt.Errorf("term %d: %w", k, err))
		}
		if signs[k] != 1 && signs[k] != -1 {
			return nil, matrixErrorf(opCombine, fmt.Errorf("sign %d: %w", k, ErrBadShape))
		}
	}

	res := terms[0].Clone()
	if signs[0] < 0 {
		for idx := range res.data {
			res.data[idx] = -res.data[idx]
		}
	}
	for k := 1; k < len(terms); k++ {
		addInto(res, terms[k], signs[k])
	}

	return res, nil
}
