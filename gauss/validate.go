// SPDX-License-Identifier: MIT

package gauss

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/gausstrace/matrix"
)

// AugmentedMatrix is a validated n×(n+1) system [A | b] with 2 ≤ n ≤ 10 and
// only finite cells. It is immutable: constructors copy their input and no
// method exposes the backing storage.
type AugmentedMatrix struct {
	m *matrix.Dense
}

// N returns the number of unknowns.
func (a *AugmentedMatrix) N() int { return a.m.Rows() }

// At returns cell (i, j); j == N() addresses the right-hand side.
func (a *AugmentedMatrix) At(i, j int) (float64, error) { return a.m.At(i, j) }

// Rows returns a deep copy of the cells.
func (a *AugmentedMatrix) Rows() [][]float64 {
	rows, _ := matrix.ToRows(a.m) // a.m is never nil after construction

	return rows
}

// working returns a private copy the engines may mutate.
func (a *AugmentedMatrix) working() *matrix.Dense {
	return a.m.Clone().(*matrix.Dense)
}

// checkShape validates n rows of n+1 columns given each row's length.
func checkShape(rowLens []int) error {
	n := len(rowLens)
	if n < MinUnknowns || n > MaxUnknowns {
		return &ShapeError{Rows: n, Row: -1}
	}
	for i, c := range rowLens {
		if c != n+1 {
			return &ShapeError{Rows: n, Cols: c, Row: i}
		}
	}

	return nil
}

// NewAugmentedMatrix validates rows and copies them into an AugmentedMatrix.
//
// Errors:
//   - *ShapeError (ErrShape) unless len(rows) = n ∈ [2,10] and every row has n+1 cells.
//   - *ValueError (ErrValue, reason ErrNonFinite) for the first NaN/±Inf cell
//     in row-major order.
//
// Complexity: O(n²).
func NewAugmentedMatrix(rows [][]float64) (*AugmentedMatrix, error) {
	lens := make([]int, len(rows))
	for i, r := range rows {
		lens[i] = len(r)
	}
	if err := checkShape(lens); err != nil {
		return nil, err
	}

	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, &ShapeError{Rows: len(rows), Row: -1}
	}
	if i, j, found := matrix.FindNonFinite(d); found {
		return nil, &ValueError{Row: i, Col: j, Err: ErrNonFinite}
	}

	return &AugmentedMatrix{m: d}, nil
}

// FromMatrix validates an existing Matrix as an augmented system and copies it.
func FromMatrix(m matrix.Matrix) (*AugmentedMatrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	rows, err := matrix.ToRows(m)
	if err != nil {
		return nil, err
	}

	return NewAugmentedMatrix(rows)
}

// ParseAugmentedMatrix converts raw text cells (as typed by a user) into an
// AugmentedMatrix. Cells are trimmed and parsed with strconv.ParseFloat.
//
// Errors, in priority order:
//   - *ShapeError when the grid is not n×(n+1), 2 ≤ n ≤ 10.
//   - *ValueError with reason ErrEmptyCell, ErrNotANumber or ErrNonFinite,
//     for the first bad cell in row-major order.
func ParseAugmentedMatrix(cells [][]string) (*AugmentedMatrix, error) {
	lens := make([]int, len(cells))
	for i, r := range cells {
		lens[i] = len(r)
	}
	if err := checkShape(lens); err != nil {
		return nil, err
	}

	rows := make([][]float64, len(cells))
	for i, r := range cells {
		rows[i] = make([]float64, len(r))
		for j, raw := range r {
			v, err := parseCell(raw)
			if err != nil {
				return nil, &ValueError{Row: i, Col: j, Raw: raw, Err: err}
			}
			rows[i][j] = v
		}
	}

	return NewAugmentedMatrix(rows)
}

func parseCell(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrEmptyCell
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat reports overflow as ErrRange with ±Inf.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange && math.IsInf(v, 0) {
			return 0, ErrNonFinite
		}

		return 0, ErrNotANumber
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}

	return v, nil
}
