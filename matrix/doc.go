// Package matrix offers dense row-major storage and elementary row kernels.
//
// The matrix package provides:
//
//   - The Matrix interface and its Dense implementation (flat []float64,
//     bounds-checked At/Set, deep Clone).
//   - Row kernels for elimination-style solvers: SwapRows, SubScaledRow,
//     RowDot and ToRows. Each has a flat-slice fast path for *Dense and a
//     generic At/Set fallback with identical results.
//   - Validators (ValidateNotNil, ValidateShape, ValidateFinite,
//     FindNonFinite) that return the package sentinels in errors.go.
//
// All kernels are deterministic: loops run in fixed row-major order and no
// kernel holds global state, so independent matrices may be processed
// concurrently.
package matrix
