// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gausstrace/gauss"
)

// renderText writes the plain-text narration: each matrix as
// "[ a b c | rhs ]" rows under a dashed caption.
func renderText(w io.Writer, res *gauss.Result, solveErr error, o Options) error {
	n := &narrator{w: w, o: o, st: newStyles(w, o.style)}
	width := o.precision + 5

	n.snapshot = func(s gauss.MatrixSnapshot) {
		n.printf("\n%s\n%s\n", s.Label(), strings.Repeat("-", ruleWidth))
		for _, row := range s.Rows {
			n.printf("%s\n", formatRow(row, width, o.precision))
		}
		n.printf("\n")
	}
	n.solution = func(x []float64) {
		for i, v := range x {
			n.printf("x%d = %s\n", i+1, n.num(v))
		}
	}
	n.verification = func(lines []gauss.VerificationLine) {
		for _, l := range lines {
			n.printf("Equation %d: %s ≈ %s (Error: %.2e)\n", l.Equation+1, n.num(l.Computed), n.num(l.Expected), l.Error)
		}
	}

	return n.run(res, solveErr)
}

// formatRow renders an augmented row with the right-hand side after a bar.
func formatRow(row []float64, width, prec int) string {
	if len(row) == 0 {
		return "[ ]"
	}
	cells := make([]string, len(row)-1)
	for j := range cells {
		cells[j] = fmt.Sprintf("%*.*f", width, prec, row[j])
	}

	return fmt.Sprintf("[ %s | %*.*f ]", strings.Join(cells, " "), width, prec, row[len(row)-1])
}
