// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape, nil and extent checks.
//  - Keep kernels minimal by delegating guard logic here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Extent).
//  - All checks are O(1) and allocate nothing on the success path.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil catches both a nil interface and a typed nil pointer stored in it.
func isNil(m Matrix) bool {
	switch t := m.(type) {
	case nil:
		return true
	case *Dense:
		return t == nil
	case *View:
		return t == nil || t.base == nil
	}

	return false
}

// IsPowerOfTwo reports whether n is 1, 2, 4, 8, ...
// Complexity: O(1).
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix for a nil interface or a typed nil *Dense/*View.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidatePowerOfTwo checks that n can be halved exactly down to 1.
//
// Errors: ErrInvalidDimensions for n<=0, ErrNotPowerOfTwo otherwise.
// Complexity: O(1).
func ValidatePowerOfTwo(n int) error {
	if n <= 0 {
		return validatorErrorf("ValidatePowerOfTwo", ErrInvalidDimensions)
	}
	if !IsPowerOfTwo(n) {
		return validatorErrorf(fmt.Sprintf("ValidatePowerOfTwo(%d)", n), ErrNotPowerOfTwo)
	}

	return nil
}

// ValidateWindow checks that the window [r0:r0+rows, c0:c0+cols) lies inside m.
// Zero-area windows are rejected: every window in this package holds data.
//
// Errors: ErrNilMatrix, ErrBadShape.
// Complexity: O(1).
func ValidateWindow(m Matrix, r0, c0, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateWindow", err)
	}
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateWindow", ErrBadShape)
	}
	if r0+rows > m.Rows() || c0+cols > m.Cols() {
		return validatorErrorf("ValidateWindow", ErrBadShape)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}
