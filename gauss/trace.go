// SPDX-License-Identifier: MIT

package gauss

import "github.com/katalvlaran/gausstrace/matrix"

// recorder appends events to a per-solve trace and forwards them to the
// optional sink. It is owned by exactly one Solve call.
type recorder struct {
	events Trace
	sink   func(Event)
}

func newRecorder(sink func(Event)) *recorder {
	return &recorder{events: make(Trace, 0, 16), sink: sink}
}

func (r *recorder) emit(ev Event) {
	r.events = append(r.events, ev)
	if r.sink != nil {
		r.sink(ev)
	}
}

// snapshot records a deep copy of w, so later row operations cannot reach
// events already in the trace.
func (r *recorder) snapshot(stage SnapshotStage, rowA, rowB int, w *matrix.Dense) {
	rows, _ := matrix.ToRows(w) // w is a non-nil working copy
	r.emit(MatrixSnapshot{Stage: stage, RowA: rowA, RowB: rowB, Rows: rows})
}

func (r *recorder) note(msg string) {
	r.emit(ErrorNote{Message: msg})
}
