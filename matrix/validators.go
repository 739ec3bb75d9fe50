// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finiteness checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Finiteness scans walk rows then columns, so the first offending cell
//    reported is always the lowest (row, col) in row-major order.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures m is non-nil and exactly rows×cols.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateShape(m Matrix, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateShape", err)
	}
	if m.Rows() != rows || m.Cols() != cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateShape: got %dx%d, want %dx%d", m.Rows(), m.Cols(), rows, cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateRowIndex ensures 0 ≤ i < m.Rows(). Assumes m is non-nil.
func ValidateRowIndex(m Matrix, i int) error {
	if i < 0 || i >= m.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateRowIndex(%d)", i), ErrOutOfRange)
	}

	return nil
}

// ValidateVecLen ensures a vector can be dotted against the leading columns
// of m: x must be non-nil and len(x) ≤ m.Cols(). Assumes m is non-nil.
// Time: O(1). Space: O(1).
func ValidateVecLen(m Matrix, x []float64) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) > m.Cols() {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// FindNonFinite returns the first (row, col) holding NaN or ±Inf in
// row-major order, and found=false when every cell is finite.
//
// Implementation:
//   - Stage 1: fast path on *Dense scans the flat slice once.
//   - Stage 2: generic path walks i→j via At.
//
// Inputs:
//   - m: non-nil Matrix.
//
// Returns:
//   - row, col: position of the first offending cell (meaningful only if found).
//   - found: true when a non-finite cell exists.
//
// Determinism:
//   - Row-major order; the same input always reports the same cell.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func FindNonFinite(m Matrix) (row, col int, found bool) {
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if isNonFinite(v) {
				return idx / d.c, idx % d.c, true
			}
		}

		return 0, 0, false
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil || isNonFinite(v) {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// ValidateFinite rejects any NaN or ±Inf cell with ErrNaNInf, naming the
// first offending position.
//
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	if i, j, found := FindNonFinite(m); found {
		return validatorErrorf(fmt.Sprintf("ValidateFinite: At(%d,%d)", i, j), ErrNaNInf)
	}

	return nil
}
