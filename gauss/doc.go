// Package gauss solves small dense linear systems Ax = b by Gaussian
// elimination with partial pivoting and records every step it takes.
//
// A solve runs four stages on an n×(n+1) augmented matrix, 2 ≤ n ≤ 10:
//
//	Validator        NewAugmentedMatrix / ParseAugmentedMatrix: shape and finiteness
//	Elimination      per column: pick the largest |pivot| (first wins on ties),
//	                 swap it into place, zero the entries below it
//	Back substitution  x_i = (b_i − Σ a_ij·x_j) / a_ii for i = n-1..0
//	Verifier         |Σ a_ij·x_j − b_i| for each original equation
//
// Each stage appends structured events to a Trace (RowSwap,
// EliminationStep, MatrixSnapshot, BackSubStep, VerificationLine,
// ErrorNote). Formatting is left to the caller; see package render.
//
// Failures are returned as values and match one of ErrShape, ErrValue,
// ErrSingular or ErrInstability. The partial trace is still returned, and
// a failed solve never carries a solution.
//
// The caller's matrix is copied on entry and never mutated. Solve holds no
// package state, so concurrent calls on independent inputs are safe.
//
// Example:
//
//	res, err := gauss.SolveRows([][]float64{
//	    {2, 1, -1, 8},
//	    {-3, -1, 2, -11},
//	    {-2, 1, 2, -3},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Solution) // ≈ [2 3 -1]
package gauss
