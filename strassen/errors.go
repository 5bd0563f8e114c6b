// SPDX-License-Identifier: MIT

package strassen

import "errors"

// Sentinel errors of the strassen package. Invalid operand shapes are reported
// with the matrix sentinels (matrix.ErrNilMatrix, matrix.ErrNonSquare,
// matrix.ErrDimensionMismatch, matrix.ErrNotPowerOfTwo). Every validation
// error is returned before any sub-task is created.
var (
	// ErrInvalidThreshold indicates a classical-multiplication cutoff below 1.
	ErrInvalidThreshold = errors.New("strassen: threshold must be >= 1")

	// ErrPoolClosed indicates a multiplication was requested on a closed Pool.
	ErrPoolClosed = errors.New("strassen: pool is closed")

	// ErrTaskPanicked wraps a panic raised inside a sub-task; the panic value
	// is appended to the message and the whole invocation fails.
	ErrTaskPanicked = errors.New("strassen: task panicked")

	// ErrNoCandidates indicates Tune was called without thresholds to try.
	ErrNoCandidates = errors.New("strassen: no threshold candidates")

	// ErrThresholdDivergence indicates two thresholds produced different
	// products for the same operands.
	ErrThresholdDivergence = errors.New("strassen: product differs between thresholds")
)
