// SPDX-License-Identifier: MIT
// Package gauss: sentinel errors and the typed SolveError kinds.
//
// Every failure of Solve matches exactly one of ErrShape, ErrValue,
// ErrSingular or ErrInstability via errors.Is, and carries its attribution
// (row/column/unknown) in a concrete type reachable via errors.As.
// Indices in the typed errors are 0-based; the Error() text is 1-based.

package gauss

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil *AugmentedMatrix was passed in.
	ErrNilMatrix = errors.New("gauss: nil augmented matrix")

	// ErrShape is matched by every *ShapeError.
	ErrShape = errors.New("gauss: matrix must have n rows of n+1 columns with 2 <= n <= 10")

	// ErrValue is matched by every *ValueError.
	ErrValue = errors.New("gauss: invalid matrix value")

	// ErrSingular is matched by every *SingularMatrixError.
	ErrSingular = errors.New("gauss: system has no unique solution")

	// ErrInstability is matched by every *NumericalInstabilityError.
	ErrInstability = errors.New("gauss: numerical instability")
)

// Reasons carried by ValueError.Err.
var (
	ErrEmptyCell  = errors.New("empty value")
	ErrNotANumber = errors.New("not a valid number")
	ErrNonFinite  = errors.New("NaN or Inf is not allowed")
)

// Phase names the solver stage that produced an error.
type Phase int

const (
	PhaseElimination Phase = iota
	PhaseBackSubstitution
)

func (p Phase) String() string {
	if p == PhaseBackSubstitution {
		return "back substitution"
	}

	return "forward elimination"
}

// ShapeError reports a matrix whose dimensions are not n×(n+1), 2 ≤ n ≤ 10.
// Row is the first ragged row, or -1 when the row count itself is wrong.
type ShapeError struct {
	Rows int
	Cols int
	Row  int
}

func (e *ShapeError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%v: row %d has %d columns, want %d", ErrShape, e.Row+1, e.Cols, e.Rows+1)
	}

	return fmt.Sprintf("%v: got %d rows", ErrShape, e.Rows)
}

// Is matches ErrShape.
func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// ValueError attributes a bad cell to its row and column.
type ValueError struct {
	Row int
	Col int
	Raw string // source text when parsed from strings, empty otherwise
	Err error  // ErrEmptyCell, ErrNotANumber or ErrNonFinite
}

func (e *ValueError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("%v at row %d, column %d (%q): %v", ErrValue, e.Row+1, e.Col+1, e.Raw, e.Err)
	}

	return fmt.Sprintf("%v at row %d, column %d: %v", ErrValue, e.Row+1, e.Col+1, e.Err)
}

// Is matches ErrValue.
func (e *ValueError) Is(target error) bool { return target == ErrValue }

// Unwrap exposes the reason.
func (e *ValueError) Unwrap() error { return e.Err }

// SingularMatrixError reports a pivot or diagonal entry below tolerance.
type SingularMatrixError struct {
	Column int
	Phase  Phase
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("%v: near-zero pivot in column %d during %s", ErrSingular, e.Column+1, e.Phase)
}

// Is matches ErrSingular.
func (e *SingularMatrixError) Is(target error) bool { return target == ErrSingular }

// NumericalInstabilityError reports a non-finite intermediate result.
// Index is the unknown being resolved (back substitution) or eliminated
// (forward elimination).
type NumericalInstabilityError struct {
	Index int
	Value float64
	Phase Phase
}

func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("%v at x%d during %s (value %v)", ErrInstability, e.Index+1, e.Phase, e.Value)
}

// Is matches ErrInstability.
func (e *NumericalInstabilityError) Is(target error) bool { return target == ErrInstability }
