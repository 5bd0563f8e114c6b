// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Quadrant names one of the four equal blocks of a matrix split at its midpoint.
type Quadrant int

// Quadrants in row-major order.
const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// String returns the conventional block label (11, 12, 21, 22).
func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "11"
	case TopRight:
		return "12"
	case BottomLeft:
		return "21"
	case BottomRight:
		return "22"
	}

	return fmt.Sprintf("Quadrant(%d)", int(q))
}

// origin returns the top-left corner of q in a matrix of half-extent half.
func (q Quadrant) origin(half int) (row, col int) {
	switch q {
	case TopRight:
		return 0, half
	case BottomLeft:
		return half, 0
	case BottomRight:
		return half, half
	}

	return 0, 0
}

// ExtractSubmatrix copies the size×size block of m starting at (rowOffset, colOffset)
// into a new matrix that shares nothing with m.
//
// Implementation:
//   - Stage 1: ValidateWindow (rowOffset+size ≤ rows, colOffset+size ≤ cols).
//   - Stage 2: row-wise copy from the backing buffer, or At on other Matrix types.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape.
//
// Complexity:
//   - Time O(size²), Space O(size²).
func ExtractSubmatrix(m Matrix, rowOffset, colOffset, size int) (*Dense, error) {
	if err := ValidateWindow(m, rowOffset, colOffset, size, size); err != nil {
		return nil, matrixErrorf(opExtract, err)
	}

	res := newSquareUnchecked(size)
	if d, r0, c0, ok := unwrapWindow(m, rowOffset, colOffset); ok {
		for i := 0; i < size; i++ {
			src := (r0+i)*d.c + c0
			copy(res.data[i*size:(i+1)*size], d.data[src:src+size])
		}
		return res, nil
	}

	var v int64
	var err error
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if v, err = m.At(rowOffset+i, colOffset+j); err != nil {
				return nil, matrixErrorf(opExtract, err)
			}
			res.data[i*size+j] = v
		}
	}

	return res, nil
}

// Split extracts the four half-size quadrants of a square matrix with an even
// extent, in TopLeft, TopRight, BottomLeft, BottomRight order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadShape (odd extent).
func Split(m Matrix) ([4]*Dense, error) {
	var out [4]*Dense
	if err := ValidateSquareNonNil(m); err != nil {
		return out, matrixErrorf(opExtract, err)
	}
	n := m.Rows()
	if n%2 != 0 {
		return out, matrixErrorf(opExtract, fmt.Errorf("odd extent %d: %w", n, ErrBadShape))
	}
	half := n / 2
	for q := TopLeft; q <= BottomRight; q++ {
		r0, c0 := q.origin(half)
		block, err := ExtractSubmatrix(m, r0, c0, half)
		if err != nil {
			return out, err
		}
		out[q] = block
	}

	return out, nil
}

// CombineQuadrants allocates a (2·size)×(2·size) matrix and copies each
// size×size quadrant into its corner (c11 top-left, c12 top-right,
// c21 bottom-left, c22 bottom-right).
//
// Errors:
//   - ErrInvalidDimensions if size <= 0.
//   - ErrNilMatrix if any quadrant is nil.
//   - ErrDimensionMismatch if a quadrant is not size×size.
//
// Complexity:
//   - Time O(size²), Space O(size²).
func CombineQuadrants(c11, c12, c21, c22 *Dense, size int) (*Dense, error) {
	if size <= 0 {
		return nil, matrixErrorf(opQuadrants, ErrInvalidDimensions)
	}
	parts := [4]*Dense{c11, c12, c21, c22}
	for q, p := range parts {
		if p == nil {
			return nil, matrixErrorf(opQuadrants, fmt.Errorf("C%s: %w", Quadrant(q), ErrNilMatrix))
		}
		if p.r != size || p.c != size {
			return nil, matrixErrorf(opQuadrants, fmt.Errorf("C%s: %w", Quadrant(q), ErrDimensionMismatch))
		}
	}

	res := newSquareUnchecked(2 * size)
	for q, p := range parts {
		r0, c0 := Quadrant(q).origin(size)
		// Window is in range by construction.
		v := &View{base: res, r0: r0, c0: c0, r: size, c: size}
		if err := v.CopyFrom(p); err != nil {
			return nil, matrixErrorf(opQuadrants, err)
		}
	}

	return res, nil
}
