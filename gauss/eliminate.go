// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gausstrace/matrix"
)

const opEliminate = "eliminate"

// selectPivot returns the row in [col, n) holding the largest |w[k][col]|.
// The comparison is strict, so among equal magnitudes the lowest row wins
// and no swap is emitted for a tie with the diagonal.
func selectPivot(w *matrix.Dense, col int) int {
	best := col
	bestAbs, _ := w.At(col, col)
	bestAbs = math.Abs(bestAbs)

	var v float64
	for k := col + 1; k < w.Rows(); k++ {
		v, _ = w.At(k, col) // indices are in range for a validated working copy
		if math.Abs(v) > bestAbs {
			bestAbs = math.Abs(v)
			best = k
		}
	}

	return best
}

// eliminate reduces the working matrix w (n×(n+1)) to row-echelon form with
// partial pivoting, in place.
// Implementation:
//   - Stage 1: per column i, pick the pivot row and swap it into place
//     (RowSwap + snapshot).
//   - Stage 2: reject |w[i][i]| < tol (ErrorNote + *SingularMatrixError).
//   - Stage 3: for each k > i with |w[k][i]| > tol, subtract factor·row_i
//     from row_k across all n+1 columns (EliminationStep + snapshot).
//
// Behavior highlights:
//   - Rows already within tolerance in column i are left untouched and
//     produce no event.
//   - Loop order is fixed (i↑, k↑), so identical inputs give identical traces.
//
// Errors:
//   - *SingularMatrixError{Column: i, Phase: PhaseElimination}.
//   - *NumericalInstabilityError when a factor overflows.
//
// Complexity:
//   - Time O(n³), Space O(n²) per snapshot.
func eliminate(w *matrix.Dense, tol float64, rec *recorder) error {
	n := w.Rows()

	var (
		i, k, p      int
		pivot, entry float64
		factor       float64
		err          error
	)
	for i = 0; i < n; i++ {
		p = selectPivot(w, i)
		if p != i {
			if err = matrix.SwapRows(w, i, p); err != nil {
				return fmt.Errorf("%s: %w", opEliminate, err)
			}
			rec.emit(RowSwap{I: i, J: p})
			rec.snapshot(StageAfterSwap, i, p, w)
		}

		pivot, _ = w.At(i, i)
		if math.Abs(pivot) < tol {
			rec.note(fmt.Sprintf(
				"System has no unique solution (zero or near-zero pivot in column %d). "+
					"The system may be inconsistent or have infinitely many solutions.", i+1))

			return &SingularMatrixError{Column: i, Phase: PhaseElimination}
		}

		for k = i + 1; k < n; k++ {
			entry, _ = w.At(k, i)
			if math.Abs(entry) <= tol {
				continue
			}
			factor = entry / pivot
			if math.IsNaN(factor) || math.IsInf(factor, 0) {
				rec.note(fmt.Sprintf("Numerical instability detected while eliminating x%d from Row %d", i+1, k+1))

				return &NumericalInstabilityError{Index: i, Value: factor, Phase: PhaseElimination}
			}
			if err = matrix.SubScaledRow(w, k, i, factor); err != nil {
				return fmt.Errorf("%s: %w", opEliminate, err)
			}
			rec.emit(EliminationStep{PivotRow: i, TargetRow: k, Column: i, Factor: factor})
			rec.snapshot(StageAfterElimination, i, k, w)
		}
	}

	return nil
}
