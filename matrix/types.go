// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by dense storage, views and kernels.
// Errors live in errors.go; storage in impl_dense.go; windows in impl_view.go.
package matrix

// Matrix is the read surface shared by *Dense and *View.
// Kernels accept Matrix and take a flat-slice fast path when both operands
// are *Dense; any other implementation goes through bounds-checked At.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (int64, error)
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix = (*Dense)(nil)
	_ Matrix = (*View)(nil)
)
