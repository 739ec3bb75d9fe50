// SPDX-License-Identifier: MIT

package gauss

import (
	"errors"
	"log/slog"
)

// Solve runs elimination, back substitution and verification on a copy of a.
// Implementation:
//   - Stage 1: copy a into a private working matrix; emit the initial snapshot.
//   - Stage 2: forward elimination with partial pivoting.
//   - Stage 3: back substitution.
//   - Stage 4: residual verification against the untouched original.
//
// Behavior highlights:
//   - a is never mutated; the Verifier reads it after the engines finish.
//   - The returned *Result is never nil. On failure Solution is nil and
//     Trace holds every event up to and including the ErrorNote.
//   - Deterministic: no randomness, fixed loop orders, strict pivot tie-break.
//
// Errors:
//   - ErrNilMatrix, *SingularMatrixError (ErrSingular),
//     *NumericalInstabilityError (ErrInstability).
//
// Complexity:
//   - Time O(n³), Space O(n³) for the recorded snapshots.
func Solve(a *AugmentedMatrix, opts ...Option) (*Result, error) {
	if a == nil {
		return &Result{Trace: Trace{}}, ErrNilMatrix
	}
	o := gatherOptions(opts...)
	rec := newRecorder(o.sink)
	n := a.N()
	log := o.logger.With(slog.Int("n", n))

	w := a.working()
	rec.snapshot(StageInitial, 0, 0, w)

	log.Debug("forward elimination", slog.Float64("tolerance", o.tol))
	if err := eliminate(w, o.tol, rec); err != nil {
		log.Debug("solve failed", slog.String("phase", PhaseElimination.String()), slog.Any("error", err))

		return &Result{Trace: rec.events}, err
	}

	log.Debug("back substitution",
		slog.Int("swaps", rec.events.Count(KindRowSwap)),
		slog.Int("eliminations", rec.events.Count(KindEliminationStep)))
	x, err := backSubstitute(w, o.tol, rec)
	if err != nil {
		log.Debug("solve failed", slog.String("phase", PhaseBackSubstitution.String()), slog.Any("error", err))

		return &Result{Trace: rec.events}, err
	}

	if _, err = verify(a.m, x, rec); err != nil {
		return &Result{Trace: rec.events}, err
	}
	res := &Result{Solution: x, Trace: rec.events}
	log.Debug("solved", slog.Float64("max_residual", res.MaxResidual()))

	return res, nil
}

// SolveRows validates rows as an augmented matrix and solves it.
// Validation failures return an empty trace with *ShapeError or *ValueError.
func SolveRows(rows [][]float64, opts ...Option) (*Result, error) {
	a, err := NewAugmentedMatrix(rows)
	if err != nil {
		return &Result{Trace: Trace{}}, err
	}

	return Solve(a, opts...)
}

// SolveText parses raw text cells and solves the system; see
// ParseAugmentedMatrix for the input contract.
func SolveText(cells [][]string, opts ...Option) (*Result, error) {
	a, err := ParseAugmentedMatrix(cells)
	if err != nil {
		return &Result{Trace: Trace{}}, err
	}

	return Solve(a, opts...)
}

// IsInputError reports whether err is a caller-recoverable input problem
// (bad shape or bad cell) as opposed to a property of the system itself.
func IsInputError(err error) bool {
	return errors.Is(err, ErrShape) || errors.Is(err, ErrValue) || errors.Is(err, ErrNilMatrix)
}
