// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/gausstrace/gauss"
)

const (
	title     = "GAUSSIAN ELIMINATION SOLVER"
	ruleWidth = 60
	indent    = "      "
)

// Phase headings, in trace order.
const (
	headingElimination  = "FORWARD ELIMINATION PHASE"
	headingBackSub      = "BACK SUBSTITUTION PHASE"
	headingSolution     = "FINAL SOLUTION"
	headingVerification = "VERIFICATION"
)

// Teal for headings, red for failures.
var (
	colorHeading = lipgloss.Color("#20B9B4")
	colorError   = lipgloss.Color("#E74C3C")
)

type styles struct {
	heading func(...string) string
	failure func(...string) string
}

func plain(s ...string) string { return strings.Join(s, " ") }

// newStyles binds lipgloss styles to w. Under StyleAuto a writer without
// color support (a file, a buffer) still receives plain text.
func newStyles(w io.Writer, s Style) styles {
	if s == StylePlain {
		return styles{heading: plain, failure: plain}
	}
	r := lipgloss.NewRenderer(w)
	if s == StyleAlways {
		r.SetColorProfile(termenv.ANSI256)
	}

	return styles{
		heading: r.NewStyle().Bold(true).Foreground(colorHeading).Render,
		failure: r.NewStyle().Foreground(colorError).Render,
	}
}

// narrator walks a trace in order and writes the shared step narration.
// The hooks decide how matrices, the solution and the verification block
// look, which is where text and table output differ.
type narrator struct {
	w   io.Writer
	o   Options
	st  styles
	err error // first write error; later writes are skipped

	snapshot     func(gauss.MatrixSnapshot)
	solution     func([]float64)
	verification func([]gauss.VerificationLine)
}

func (n *narrator) printf(format string, args ...any) {
	if n.err != nil {
		return
	}
	_, n.err = fmt.Fprintf(n.w, format, args...)
}

func (n *narrator) heading(s string) {
	rule := strings.Repeat("=", ruleWidth)
	n.printf("%s\n%s\n%s\n\n", rule, n.st.heading(s), rule)
}

func (n *narrator) num(v float64) string {
	return fmt.Sprintf("%.*f", n.o.precision, v)
}

// run renders res. Phase headings are emitted lazily on the first event of
// each phase, so a solve that stops early shows only the phases it reached.
func (n *narrator) run(res *gauss.Result, solveErr error) error {
	n.printf("%s\n%s\n\n", n.st.heading(title), strings.Repeat("=", ruleWidth))

	var (
		inBackSub bool
		lines     []gauss.VerificationLine
		notes     int
	)
	enterBackSub := func() {
		if !inBackSub {
			inBackSub = true
			n.heading(headingBackSub)
		}
	}

	for _, ev := range res.Trace {
		switch e := ev.(type) {
		case gauss.MatrixSnapshot:
			n.snapshot(e)
			if e.Stage == gauss.StageInitial {
				n.heading(headingElimination)
			}
		case gauss.RowSwap:
			n.printf("Step: Swapped Row %d with Row %d (partial pivoting)\n", e.I+1, e.J+1)
		case gauss.EliminationStep:
			n.printf("Step: Eliminate x%d from Row %d using Row %d\n", e.Column+1, e.TargetRow+1, e.PivotRow+1)
			n.printf("%sFactor = %s, Operation: R%d = R%d - (%s) × R%d\n",
				indent, n.num(e.Factor), e.TargetRow+1, e.TargetRow+1, n.num(e.Factor), e.PivotRow+1)
		case gauss.BackSubStep:
			enterBackSub()
			n.printf("Step: Solving for x%d\n%sx%d = %s = %s\n\n",
				e.Index+1, indent, e.Index+1, e.Expression.Format(n.o.precision), n.num(e.Value))
		case gauss.VerificationLine:
			lines = append(lines, e)
		case gauss.ErrorNote:
			if p, ok := failedIn(solveErr); ok && p == gauss.PhaseBackSubstitution {
				enterBackSub()
			}
			notes++
			n.printf("\n%s\n", n.st.failure("Error: "+e.Message))
		}
	}

	if res.Solution != nil {
		n.heading(headingSolution)
		n.solution(res.Solution)
	}
	if len(lines) > 0 {
		n.printf("\n")
		n.heading(headingVerification)
		n.verification(lines)
	}
	if solveErr != nil && notes == 0 {
		// validation failures never reach the engines, so nothing narrated them
		n.printf("%s\n", n.st.failure("Error: "+solveErr.Error()))
	}

	return n.err
}
