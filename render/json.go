// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/gausstrace/gauss"
)

// number encodes ±Inf and NaN as strings, which encoding/json rejects as
// numbers. Overflowed snapshots reach the trace before the solver stops.
type number float64

func (v number) MarshalJSON() ([]byte, error) {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func numbers(xs []float64) []number {
	if xs == nil {
		return nil
	}
	out := make([]number, len(xs))
	for i, x := range xs {
		out[i] = number(x)
	}

	return out
}

type jsonDocument struct {
	Solution    []number    `json:"solution"`
	MaxResidual *number     `json:"max_residual,omitempty"`
	Error       *jsonError  `json:"error,omitempty"`
	Trace       []jsonEvent `json:"trace"`
}

type jsonError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type jsonTerm struct {
	Coefficient number `json:"coefficient"`
	Index       int    `json:"index"`
	Value       number `json:"value"`
}

// jsonEvent is the flattened union of all event kinds; Kind says which
// fields are populated. Indices are 0-based.
type jsonEvent struct {
	Kind string `json:"kind"`

	// row_swap
	I *int `json:"i,omitempty"`
	J *int `json:"j,omitempty"`

	// elimination_step
	PivotRow  *int    `json:"pivot_row,omitempty"`
	TargetRow *int    `json:"target_row,omitempty"`
	Column    *int    `json:"column,omitempty"`
	Factor    *number `json:"factor,omitempty"`

	// matrix_snapshot
	Label string     `json:"label,omitempty"`
	Rows  [][]number `json:"rows,omitempty"`

	// back_sub_step
	Index      *int       `json:"index,omitempty"`
	RHS        *number    `json:"rhs,omitempty"`
	Terms      []jsonTerm `json:"terms,omitempty"`
	Diagonal   *number    `json:"diagonal,omitempty"`
	Expression string     `json:"expression,omitempty"`
	Value      *number    `json:"value,omitempty"`

	// verification_line
	Equation *int    `json:"equation,omitempty"`
	Computed *number `json:"computed,omitempty"`
	Expected *number `json:"expected,omitempty"`
	Residual *number `json:"error,omitempty"`

	// error_note
	Message string `json:"message,omitempty"`
}

func intp(v int) *int { return &v }

func nump(v float64) *number {
	n := number(v)

	return &n
}

func toJSONEvent(ev gauss.Event) jsonEvent {
	out := jsonEvent{Kind: ev.Kind().String()}
	switch e := ev.(type) {
	case gauss.RowSwap:
		out.I, out.J = intp(e.I), intp(e.J)
	case gauss.EliminationStep:
		out.PivotRow, out.TargetRow, out.Column = intp(e.PivotRow), intp(e.TargetRow), intp(e.Column)
		out.Factor = nump(e.Factor)
	case gauss.MatrixSnapshot:
		out.Label = e.Label()
		out.Rows = make([][]number, len(e.Rows))
		for i, r := range e.Rows {
			out.Rows[i] = numbers(r)
		}
	case gauss.BackSubStep:
		out.Index = intp(e.Index)
		out.RHS, out.Diagonal = nump(e.Expression.RHS), nump(e.Expression.Diagonal)
		for _, t := range e.Expression.Terms {
			out.Terms = append(out.Terms, jsonTerm{Coefficient: number(t.Coefficient), Index: t.Index, Value: number(t.Value)})
		}
		out.Expression = e.Expression.String()
		out.Value = nump(e.Value)
	case gauss.VerificationLine:
		out.Equation = intp(e.Equation)
		out.Computed, out.Expected, out.Residual = nump(e.Computed), nump(e.Expected), nump(e.Error)
	case gauss.ErrorNote:
		out.Message = e.Message
	}

	return out
}

// renderJSON writes one indented document per solve.
func renderJSON(w io.Writer, res *gauss.Result, solveErr error) error {
	doc := jsonDocument{
		Solution: numbers(res.Solution),
		Trace:    make([]jsonEvent, 0, len(res.Trace)),
	}
	for _, ev := range res.Trace {
		doc.Trace = append(doc.Trace, toJSONEvent(ev))
	}
	if res.Solution != nil {
		doc.MaxResidual = nump(res.MaxResidual())
	}
	if solveErr != nil {
		doc.Error = &jsonError{Kind: errorKind(solveErr), Message: solveErr.Error()}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
