// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// View is a non-owning window into a Dense (shared storage).
// It carries the base buffer reference, the top-left offset and the extent.
type View struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // view height
	c    int    // view width
}

// Rows returns the number of rows in the view.
func (v *View) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *View) Cols() int { return v.c }

// Offset returns the top-left coordinates of the window in its base.
func (v *View) Offset() (row, col int) { return v.r0, v.c0 }

// Base returns the Dense the view reads from and writes into.
func (v *View) Base() *Dense { return v.base }

// At reads element (i,j) in the view or returns ErrOutOfRange.
func (v *View) At(i, j int) (int64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("View.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes element (i,j) through to the base buffer.
func (v *View) Set(i, j int, val int64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("View.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val

	return nil
}

// CopyFrom writes src into the window row by row.
//
// Errors:
//   - ErrNilMatrix if src is nil.
//   - ErrDimensionMismatch if src's shape differs from the view's.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (v *View) CopyFrom(src *Dense) error {
	if src == nil {
		return fmt.Errorf("View.CopyFrom: %w", ErrNilMatrix)
	}
	if src.r != v.r || src.c != v.c {
		return fmt.Errorf("View.CopyFrom: %w", ErrDimensionMismatch)
	}
	stride := v.base.c
	for i := 0; i < v.r; i++ {
		dst := (v.r0+i)*stride + v.c0
		copy(v.base.data[dst:dst+v.c], src.data[i*src.c:(i+1)*src.c])
	}

	return nil
}
