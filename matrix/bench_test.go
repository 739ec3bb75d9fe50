// Package matrix_test provides benchmarks for the row kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/gausstrace/matrix"
)

// benchSizes are the row counts to benchmark (augmented: n×(n+1)).
var benchSizes = []int{4, 10, 64}

// sinks to defeat dead-code elimination
var sinkF float64

func BenchmarkSubScaledRow(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := MustDense(b, n, n+1)
			RandomFill(b, m, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.SubScaledRow(m, i%n, (i+1)%n, 1e-9); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRowDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := MustDense(b, n, n+1)
			RandomFill(b, m, 4242)
			x := make([]float64, n)
			for j := range x {
				x[j] = float64(j)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.RowDot(m, i%n, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}
