package gauss

import "github.com/katalvlaran/gausstrace/matrix"

// BackSubstituteRows exposes the back-substitution engine to the external
// test package so its independent diagonal guard can be exercised directly.
func BackSubstituteRows(rows [][]float64, tol float64) ([]float64, Trace, error) {
	w, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, nil, err
	}
	rec := newRecorder(nil)
	x, err := backSubstitute(w, tol, rec)

	return x, rec.events, err
}
