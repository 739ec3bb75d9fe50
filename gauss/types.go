// SPDX-License-Identifier: MIT

// Package gauss: trace event types and the solve result.
// Events are plain values; every field is copied at emission time so a
// recorded trace never changes after it is handed to the caller.
package gauss

import (
	"fmt"
	"strings"
)

// Size bounds for the number of unknowns n. The upper bound is a usability
// limit for readable traces, not a numerical one.
const (
	MinUnknowns = 2
	MaxUnknowns = 10
)

// DefaultPivotTolerance is the magnitude below which a pivot or diagonal
// entry is treated as numerically zero. The same value gates forward
// elimination and back substitution.
const DefaultPivotTolerance = 1e-10

// EventKind discriminates the concrete Event types.
type EventKind int

const (
	KindRowSwap EventKind = iota + 1
	KindEliminationStep
	KindMatrixSnapshot
	KindBackSubStep
	KindVerificationLine
	KindErrorNote
)

var kindNames = map[EventKind]string{
	KindRowSwap:          "row_swap",
	KindEliminationStep:  "elimination_step",
	KindMatrixSnapshot:   "matrix_snapshot",
	KindBackSubStep:      "back_sub_step",
	KindVerificationLine: "verification_line",
	KindErrorNote:        "error_note",
}

// String returns the snake_case name used in JSON output.
func (k EventKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one entry of a solve trace. The concrete types are RowSwap,
// EliminationStep, MatrixSnapshot, BackSubStep, VerificationLine and
// ErrorNote; switch on the type or on Kind().
type Event interface {
	Kind() EventKind
}

// RowSwap records a partial-pivoting exchange of rows I and J (0-based).
// I is the pivot position (current column), J the row that held the
// largest magnitude.
type RowSwap struct {
	I, J int
}

// EliminationStep records row_Target ← row_Target − Factor·row_Pivot,
// zeroing column Column of the target row.
type EliminationStep struct {
	PivotRow  int
	TargetRow int
	Column    int
	Factor    float64
}

// SnapshotStage says why a MatrixSnapshot was taken.
type SnapshotStage int

const (
	StageInitial SnapshotStage = iota
	StageAfterSwap
	StageAfterElimination
)

// MatrixSnapshot is a deep copy of the working augmented matrix.
// For StageAfterSwap, RowA/RowB are the swapped rows; for
// StageAfterElimination, RowB is the row that was reduced.
type MatrixSnapshot struct {
	Stage SnapshotStage
	RowA  int
	RowB  int
	Rows  [][]float64
}

// Label returns the default human-facing caption (1-based rows).
func (s MatrixSnapshot) Label() string {
	switch s.Stage {
	case StageAfterSwap:
		return fmt.Sprintf("After swapping rows %d and %d:", s.RowA+1, s.RowB+1)
	case StageAfterElimination:
		return fmt.Sprintf("After eliminating from Row %d:", s.RowB+1)
	default:
		return "Initial Augmented Matrix:"
	}
}

// Term is one subtracted product a·x_j in a back-substitution expression.
type Term struct {
	Coefficient float64
	Index       int
	Value       float64
}

// Expression is x_i = (RHS − Σ Terms) / Diagonal, with every x_j already
// resolved.
type Expression struct {
	RHS      float64
	Terms    []Term
	Diagonal float64
}

// Format renders the expression with prec decimals, e.g.
// "(8.000 - 1.000×3.000) / 2.000".
func (e Expression) Format(prec int) string {
	if len(e.Terms) == 0 {
		return fmt.Sprintf("%.*f / %.*f", prec, e.RHS, prec, e.Diagonal)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "(%.*f", prec, e.RHS)
	for _, t := range e.Terms {
		fmt.Fprintf(&sb, " - %.*f×%.*f", prec, t.Coefficient, prec, t.Value)
	}
	fmt.Fprintf(&sb, ") / %.*f", prec, e.Diagonal)

	return sb.String()
}

// String uses three decimals.
func (e Expression) String() string { return e.Format(3) }

// BackSubStep records the resolution of unknown Index.
type BackSubStep struct {
	Index      int
	Expression Expression
	Value      float64
}

// VerificationLine compares equation Equation's recomputed left-hand side
// against its original right-hand side. Error is |Computed − Expected|.
type VerificationLine struct {
	Equation int
	Computed float64
	Expected float64
	Error    float64
}

// ErrorNote explains why a solve stopped.
type ErrorNote struct {
	Message string
}

func (RowSwap) Kind() EventKind          { return KindRowSwap }
func (EliminationStep) Kind() EventKind  { return KindEliminationStep }
func (MatrixSnapshot) Kind() EventKind   { return KindMatrixSnapshot }
func (BackSubStep) Kind() EventKind      { return KindBackSubStep }
func (VerificationLine) Kind() EventKind { return KindVerificationLine }
func (ErrorNote) Kind() EventKind        { return KindErrorNote }

// Trace is the ordered event log of one solve.
type Trace []Event

// Count returns how many events of kind k the trace holds.
func (t Trace) Count(k EventKind) int {
	n := 0
	for _, ev := range t {
		if ev.Kind() == k {
			n++
		}
	}

	return n
}

// Verification returns the VerificationLine events in equation order.
func (t Trace) Verification() []VerificationLine {
	var out []VerificationLine
	for _, ev := range t {
		if v, ok := ev.(VerificationLine); ok {
			out = append(out, v)
		}
	}

	return out
}

// Result is returned by every Solve call, successful or not.
// Solution is nil unless the solve completed; Trace always holds every
// event emitted up to the point of return.
type Result struct {
	Solution []float64
	Trace    Trace
}

// MaxResidual returns the largest VerificationLine error, or 0 if the trace
// has no verification pass.
func (r *Result) MaxResidual() float64 {
	worst := 0.0
	for _, v := range r.Trace.Verification() {
		if v.Error > worst {
			worst = v.Error
		}
	}

	return worst
}
