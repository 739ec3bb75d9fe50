// SPDX-License-Identifier: MIT
// Package matrix: elementary row kernels.
//
// Purpose:
//   - Provide the in-place row operations elimination solvers are built from
//     (swap, scaled subtraction) plus the row·vector product used to check
//     residuals.
//
// Notes:
//   - Kernels mutate their argument in place; callers that must preserve an
//     original operate on Clone() first.
//   - All kernels use central validators and wrap failures via rowErrorf.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opSwapRows     = "SwapRows"
	opSubScaledRow = "SubScaledRow"
	opRowDot       = "RowDot"
	opToRows       = "ToRows"
)

// rowErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func rowErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SwapRows exchanges rows i and j of m in place.
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateRowIndex for i and j.
//   - Stage 2: i == j is a no-op; *Dense swaps element pairs in the flat
//     slice, other implementations swap via At/Set.
//
// Inputs:
//   - m: non-nil Matrix (mutated).
//   - i, j: row indices in [0, Rows()).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(1).
func SwapRows(m Matrix, i, j int) error {
	if err := ValidateNotNil(m); err != nil {
		return rowErrorf(opSwapRows, err)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return rowErrorf(opSwapRows, err)
	}
	if err := ValidateRowIndex(m, j); err != nil {
		return rowErrorf(opSwapRows, err)
	}
	if i == j {
		return nil
	}

	if d, ok := m.(*Dense); ok {
		ri, rj := d.data[i*d.c:(i+1)*d.c], d.data[j*d.c:(j+1)*d.c]
		for k := range ri {
			ri[k], rj[k] = rj[k], ri[k]
		}

		return nil
	}

	var (
		k      int
		vi, vj float64
		err    error
	)
	for k = 0; k < m.Cols(); k++ {
		if vi, err = m.At(i, k); err != nil {
			return rowErrorf(opSwapRows, err)
		}
		if vj, err = m.At(j, k); err != nil {
			return rowErrorf(opSwapRows, err)
		}
		if err = m.Set(i, k, vj); err != nil {
			return rowErrorf(opSwapRows, err)
		}
		if err = m.Set(j, k, vi); err != nil {
			return rowErrorf(opSwapRows, err)
		}
	}

	return nil
}

// SubScaledRow performs row_dst ← row_dst − factor·row_src across every
// column of m, in place.
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateRowIndex for dst and src; reject a
//     non-finite factor (ErrNaNInf).
//   - Stage 2: *Dense walks both rows as sub-slices; others use At/Set.
//
// Behavior highlights:
//   - Column order is fixed 0..c-1, so rounding is reproducible.
//   - dst == src is allowed and yields (1−factor)·row.
//
// Inputs:
//   - m: non-nil Matrix (mutated).
//   - dst, src: row indices.
//   - factor: finite multiplier.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf.
//
// Complexity:
//   - Time O(c), Space O(1).
func SubScaledRow(m Matrix, dst, src int, factor float64) error {
	if err := ValidateNotNil(m); err != nil {
		return rowErrorf(opSubScaledRow, err)
	}
	if err := ValidateRowIndex(m, dst); err != nil {
		return rowErrorf(opSubScaledRow, err)
	}
	if err := ValidateRowIndex(m, src); err != nil {
		return rowErrorf(opSubScaledRow, err)
	}
	if isNonFinite(factor) {
		return rowErrorf(opSubScaledRow, ErrNaNInf)
	}

	if d, ok := m.(*Dense); ok {
		rd, rs := d.data[dst*d.c:(dst+1)*d.c], d.data[src*d.c:(src+1)*d.c]
		for k := range rd {
			rd[k] -= factor * rs[k]
		}

		return nil
	}

	var (
		k      int
		vd, vs float64
		err    error
	)
	for k = 0; k < m.Cols(); k++ {
		if vd, err = m.At(dst, k); err != nil {
			return rowErrorf(opSubScaledRow, err)
		}
		if vs, err = m.At(src, k); err != nil {
			return rowErrorf(opSubScaledRow, err)
		}
		if err = m.Set(dst, k, vd-factor*vs); err != nil {
			return rowErrorf(opSubScaledRow, err)
		}
	}

	return nil
}

// RowDot returns Σ_{j<len(x)} m[row][j]·x[j]. Only the leading len(x)
// columns take part, which lets callers dot the coefficient block of an
// augmented matrix without slicing off its right-hand side.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrOutOfRange, ErrDimensionMismatch
//     when len(x) > Cols().
//
// Complexity:
//   - Time O(len(x)), Space O(1).
func RowDot(m Matrix, row int, x []float64) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, rowErrorf(opRowDot, err)
	}
	if err := ValidateRowIndex(m, row); err != nil {
		return 0, rowErrorf(opRowDot, err)
	}
	if err := ValidateVecLen(m, x); err != nil {
		return 0, rowErrorf(opRowDot, err)
	}

	sum := ZeroSum
	if d, ok := m.(*Dense); ok {
		base := row * d.c
		for j, xj := range x {
			sum += d.data[base+j] * xj
		}

		return sum, nil
	}

	var (
		v   float64
		err error
	)
	for j, xj := range x {
		if v, err = m.At(row, j); err != nil {
			return 0, rowErrorf(opRowDot, err)
		}
		sum += v * xj
	}

	return sum, nil
}

// ToRows returns a deep [][]float64 copy of m, suitable for handing to
// callers that must not observe later mutation.
// Complexity: O(r*c) time and memory.
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, rowErrorf(opToRows, err)
	}

	out := make([][]float64, m.Rows())
	if d, ok := m.(*Dense); ok {
		for i := range out {
			out[i] = make([]float64, d.c)
			copy(out[i], d.data[i*d.c:(i+1)*d.c])
		}

		return out, nil
	}

	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, rowErrorf(opToRows, err)
			}
		}
	}

	return out, nil
}
