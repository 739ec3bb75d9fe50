// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gausstrace/matrix"
)

// backSubstitute solves the row-echelon system in w bottom-up.
// Implementation:
//   - Stage 1: for i = n-1..0, re-check |w[i][i]| ≥ tol independently of
//     elimination.
//   - Stage 2: x[i] = (w[i][n] − Σ_{j>i} w[i][j]·x[j]) / w[i][i], summing j
//     in ascending order.
//   - Stage 3: reject a non-finite x[i]; otherwise emit BackSubStep.
//
// Returns:
//   - []float64: the full solution, or nil on any failure (never partial).
//
// Errors:
//   - *SingularMatrixError{Phase: PhaseBackSubstitution}.
//   - *NumericalInstabilityError{Index: i, Phase: PhaseBackSubstitution}.
//
// Complexity:
//   - Time O(n²), Space O(n).
func backSubstitute(w *matrix.Dense, tol float64, rec *recorder) ([]float64, error) {
	n := w.Rows()
	x := make([]float64, n)

	var (
		i, j           int
		diag, rhs, aij float64
		sum            float64
	)
	for i = n - 1; i >= 0; i-- {
		diag, _ = w.At(i, i)
		if math.Abs(diag) < tol {
			rec.note(fmt.Sprintf("Cannot solve - zero diagonal at position %d", i+1))

			return nil, &SingularMatrixError{Column: i, Phase: PhaseBackSubstitution}
		}

		rhs, _ = w.At(i, n)
		expr := Expression{RHS: rhs, Diagonal: diag}
		sum = matrix.ZeroSum
		for j = i + 1; j < n; j++ {
			aij, _ = w.At(i, j)
			sum += aij * x[j]
			expr.Terms = append(expr.Terms, Term{Coefficient: aij, Index: j, Value: x[j]})
		}

		x[i] = (rhs - sum) / diag
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			rec.note(fmt.Sprintf("Numerical instability detected at x%d", i+1))

			return nil, &NumericalInstabilityError{Index: i, Value: x[i], Phase: PhaseBackSubstitution}
		}

		rec.emit(BackSubStep{Index: i, Expression: expr, Value: x[i]})
	}

	return x, nil
}
