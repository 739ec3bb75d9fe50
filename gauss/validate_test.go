package gauss_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gausstrace/gauss"
	"github.com/katalvlaran/gausstrace/matrix"
)

func TestParseAugmentedMatrix_Valid(t *testing.T) {
	t.Parallel()

	a, err := gauss.ParseAugmentedMatrix([][]string{
		{" 2", "1 ", "-1", "8"},
		{"-3", "-1", "2", "-11"},
		{"-2", "1", "2", "-3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, a.N())
	assert.Equal(t, textbook(), a.Rows())

	v, err := a.At(1, 3)
	require.NoError(t, err)
	assert.Equal(t, -11.0, v)
}

func TestParseAugmentedMatrix_BadCells(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		cell   string
		reason error
	}{
		{"empty", "", gauss.ErrEmptyCell},
		{"blank", "   ", gauss.ErrEmptyCell},
		{"word", "abc", gauss.ErrNotANumber},
		{"trailing junk", "1.5x", gauss.ErrNotANumber},
		{"nan", "NaN", gauss.ErrNonFinite},
		{"inf", "-Inf", gauss.ErrNonFinite},
		{"overflow", "1e400", gauss.ErrNonFinite},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := gauss.ParseAugmentedMatrix([][]string{
				{"1", "2", "3"},
				{"4", tc.cell, "6"},
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, gauss.ErrValue)
			assert.ErrorIs(t, err, tc.reason)
			assert.True(t, gauss.IsInputError(err))

			var ve *gauss.ValueError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, 1, ve.Row)
			assert.Equal(t, 1, ve.Col)
			assert.Equal(t, tc.cell, ve.Raw)
			assert.Contains(t, err.Error(), "row 2, column 2")
		})
	}
}

func TestParseAugmentedMatrix_FirstBadCellWins(t *testing.T) {
	t.Parallel()

	_, err := gauss.ParseAugmentedMatrix([][]string{
		{"1", "x", "3"},
		{"", "5", "6"},
	})
	var ve *gauss.ValueError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, 0, ve.Row)
	assert.Equal(t, 1, ve.Col)
	assert.ErrorIs(t, err, gauss.ErrNotANumber)
}

func TestParseAugmentedMatrix_ShapeBeforeValues(t *testing.T) {
	t.Parallel()

	_, err := gauss.ParseAugmentedMatrix([][]string{{"x", "2", "3"}, {"4", "5"}})
	assert.ErrorIs(t, err, gauss.ErrShape)
	assert.NotErrorIs(t, err, gauss.ErrValue)
	assert.Contains(t, err.Error(), "row 2 has 2 columns, want 3")
}

func TestNewAugmentedMatrix_NonFinite(t *testing.T) {
	t.Parallel()

	_, err := gauss.NewAugmentedMatrix([][]float64{{1, 2, 3}, {4, 5, math.Inf(-1)}})
	var ve *gauss.ValueError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, 1, ve.Row)
	assert.Equal(t, 2, ve.Col)
	assert.ErrorIs(t, err, gauss.ErrNonFinite)
	assert.Empty(t, ve.Raw)
}

func TestNewAugmentedMatrix_RowCount(t *testing.T) {
	t.Parallel()

	_, err := gauss.NewAugmentedMatrix(nil)
	var se *gauss.ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, -1, se.Row)
	assert.Equal(t, 0, se.Rows)
	assert.Contains(t, err.Error(), "got 0 rows")
}

func TestAugmentedMatrix_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := textbook()
	a := mustAugmented(t, rows)
	rows[0][0] = 99
	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v, "constructor must copy")

	out := a.Rows()
	out[1][1] = 42
	assert.Equal(t, textbook(), a.Rows(), "Rows must return a copy")
}

func TestFromMatrix(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDenseFromRows(textbook())
	require.NoError(t, err)
	a, err := gauss.FromMatrix(d)
	require.NoError(t, err)
	assert.Equal(t, textbook(), a.Rows())

	require.NoError(t, d.Set(0, 0, 7))
	v, _ := a.At(0, 0)
	assert.Equal(t, 2.0, v)

	_, err = gauss.FromMatrix(nil)
	assert.ErrorIs(t, err, gauss.ErrNilMatrix)

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	_, err = gauss.FromMatrix(sq)
	assert.ErrorIs(t, err, gauss.ErrShape)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	a := mustAugmented(t, textbook())
	lines, err := gauss.Verify(a, []float64{2, 3, -1})
	require.NoError(t, err)
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, 0.0, l.Error)
		assert.Equal(t, l.Expected, l.Computed)
	}

	// a wrong candidate is reported, not rejected
	lines, err = gauss.Verify(a, []float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 8.0, lines[0].Error)
	assert.Equal(t, 11.0, lines[1].Error)

	_, err = gauss.Verify(a, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = gauss.Verify(nil, []float64{1, 2})
	assert.ErrorIs(t, err, gauss.ErrNilMatrix)
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	sing := &gauss.SingularMatrixError{Column: 2, Phase: gauss.PhaseBackSubstitution}
	assert.ErrorIs(t, sing, gauss.ErrSingular)
	assert.NotErrorIs(t, sing, gauss.ErrInstability)
	assert.Contains(t, sing.Error(), "column 3 during back substitution")
	assert.False(t, gauss.IsInputError(sing))

	inst := &gauss.NumericalInstabilityError{Index: 0, Value: math.Inf(1), Phase: gauss.PhaseElimination}
	assert.ErrorIs(t, inst, gauss.ErrInstability)
	assert.Contains(t, inst.Error(), "x1 during forward elimination")

	assert.Equal(t, "row_swap", gauss.KindRowSwap.String())
	assert.Equal(t, "error_note", gauss.KindErrorNote.String())
	assert.Equal(t, "EventKind(0)", gauss.EventKind(0).String())
}
