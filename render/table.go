// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/gausstrace/gauss"
)

// renderTable keeps the text narration but draws every matrix, the solution
// and the verification block as box tables.
func renderTable(w io.Writer, res *gauss.Result, solveErr error, o Options) error {
	n := &narrator{w: w, o: o, st: newStyles(w, o.style)}

	draw := func(t table.Writer) {
		if n.err != nil {
			return
		}
		t.SetStyle(table.StyleLight)
		n.printf("%s\n\n", t.Render())
	}

	n.snapshot = func(s gauss.MatrixSnapshot) {
		if len(s.Rows) == 0 {
			return
		}
		cols := len(s.Rows[0])
		t := table.NewWriter()
		t.SetTitle(s.Label())

		header := make(table.Row, 0, cols+1)
		header = append(header, "")
		for j := 1; j < cols; j++ {
			header = append(header, fmt.Sprintf("x%d", j))
		}
		header = append(header, "b")
		t.AppendHeader(header)

		for i, r := range s.Rows {
			row := make(table.Row, 0, cols+1)
			row = append(row, fmt.Sprintf("R%d", i+1))
			for _, v := range r {
				row = append(row, n.num(v))
			}
			t.AppendRow(row)
		}
		n.printf("\n")
		draw(t)
	}
	n.solution = func(x []float64) {
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Unknown", "Value"})
		for i, v := range x {
			t.AppendRow(table.Row{fmt.Sprintf("x%d", i+1), n.num(v)})
		}
		draw(t)
	}
	n.verification = func(lines []gauss.VerificationLine) {
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Equation", "Computed", "Expected", "Error"})
		for _, l := range lines {
			t.AppendRow(table.Row{l.Equation + 1, n.num(l.Computed), n.num(l.Expected), fmt.Sprintf("%.2e", l.Error)})
		}
		draw(t)
	}

	return n.run(res, solveErr)
}
