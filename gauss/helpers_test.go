package gauss_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gausstrace/gauss"
)

// textbook is the 3×3 round-trip system with solution (2, 3, -1).
func textbook() [][]float64 {
	return [][]float64{
		{2, 1, -1, 8},
		{-3, -1, 2, -11},
		{-2, 1, 2, -3},
	}
}

// copyRows deep-copies a fixture so tests can compare against the original.
func copyRows(src [][]float64) [][]float64 {
	out := make([][]float64, len(src))
	for i, r := range src {
		out[i] = append([]float64(nil), r...)
	}

	return out
}

// randomSystem builds a deterministic, strictly diagonally dominant (hence
// non-singular) n×(n+1) system from seed.
func randomSystem(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n+1)
		off := 0.0
		for j := 0; j <= n; j++ {
			rows[i][j] = rng.Float64()*20 - 10
			if j != i && j < n {
				off += math.Abs(rows[i][j])
			}
		}
		rows[i][i] = math.Copysign(off+1+rng.Float64(), rows[i][i])
	}

	return rows
}

// mustAugmented validates rows or fails the test.
func mustAugmented(t testing.TB, rows [][]float64) *gauss.AugmentedMatrix {
	t.Helper()
	a, err := gauss.NewAugmentedMatrix(rows)
	require.NoError(t, err)

	return a
}

// kinds flattens a trace into its kind sequence.
func kinds(tr gauss.Trace) []gauss.EventKind {
	out := make([]gauss.EventKind, len(tr))
	for i, ev := range tr {
		out[i] = ev.Kind()
	}

	return out
}

// countEliminable replays elimination on a copy and counts the sub-diagonal
// entries that exceed tol at the moment their column is processed.
func countEliminable(rows [][]float64, tol float64) int {
	a := copyRows(rows)
	n := len(a)
	count := 0
	for i := 0; i < n; i++ {
		p := i
		for k := i + 1; k < n; k++ {
			if math.Abs(a[k][i]) > math.Abs(a[p][i]) {
				p = k
			}
		}
		a[i], a[p] = a[p], a[i]
		if math.Abs(a[i][i]) < tol {
			return count
		}
		for k := i + 1; k < n; k++ {
			if math.Abs(a[k][i]) > tol {
				count++
				f := a[k][i] / a[i][i]
				for j := range a[k] {
					a[k][j] -= f * a[i][j]
				}
			}
		}
	}

	return count
}
