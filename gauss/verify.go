// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gausstrace/matrix"
)

// verify recomputes every equation of the original system against x and
// emits one VerificationLine per equation. It never rejects a solution;
// a large residual is reported, not acted on.
func verify(orig *matrix.Dense, x []float64, rec *recorder) ([]VerificationLine, error) {
	n := orig.Rows()
	lines := make([]VerificationLine, 0, n)
	for i := 0; i < n; i++ {
		computed, err := matrix.RowDot(orig, i, x)
		if err != nil {
			return nil, fmt.Errorf("verify: %w", err)
		}
		expected, _ := orig.At(i, n)
		line := VerificationLine{
			Equation: i,
			Computed: computed,
			Expected: expected,
			Error:    math.Abs(computed - expected),
		}
		lines = append(lines, line)
		if rec != nil {
			rec.emit(line)
		}
	}

	return lines, nil
}

// Verify checks a candidate solution x against a, one line per equation.
// Callers can use it on solutions obtained elsewhere.
//
// Errors:
//   - ErrNilMatrix for a nil a.
//   - matrix.ErrDimensionMismatch when len(x) != a.N().
func Verify(a *AugmentedMatrix, x []float64) ([]VerificationLine, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if len(x) != a.N() {
		return nil, fmt.Errorf("Verify: got %d values for %d unknowns: %w", len(x), a.N(), matrix.ErrDimensionMismatch)
	}

	return verify(a.m, x, nil)
}
