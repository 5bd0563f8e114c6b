// Package matrix offers the integer matrix primitives behind the Strassen engine.
//
// The matrix package provides:
//
//   - Dense, a row-major int64 buffer with bounds-checked At/Set.
//   - View, a no-copy window (offset + extent) over a Dense.
//   - Add, Sub and Combine for element-wise sums of equal-shape operands.
//   - ExtractSubmatrix, Split and CombineQuadrants for block decomposition.
//   - MultiplyClassical, the i-j-k triple loop over offset windows.
//   - NewRandom/Ones/Identity fixtures for demos and tests.
//
// Every operation validates its inputs, returns sentinel errors from errors.go
// (match them with errors.Is) and allocates a fresh result; operands are
// never mutated. Arithmetic is int64 and wraps on overflow.
package matrix
