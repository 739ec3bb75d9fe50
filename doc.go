// Package gausstrace is a step-by-step solver for small linear systems:
// Gaussian elimination with partial pivoting where every row swap,
// elimination, back-substitution step and residual check is recorded.
//
// 🚀 What is gausstrace?
//
//	A small, deterministic library plus CLI that brings together:
//		• Validation: n×(n+1) augmented matrices, 2 ≤ n ≤ 10, finite cells
//		• Elimination: partial pivoting, injectable pivot tolerance
//		• Back substitution: independent diagonal guard, overflow detection
//		• Verification: per-equation residuals against the original system
//		• Trace: structured events, streamed or collected, never pre-formatted
//
// ✨ Why choose gausstrace?
//
//   - Teaching-friendly: every step is an event you can print or inspect
//   - Honest failures: singular or unstable systems return typed errors
//     together with the partial trace, never a partial solution
//   - Pure library core: no global state, the input is never mutated
//
// Packages:
//
//	gauss/             validation, elimination, back substitution, verification, trace
//	matrix/            dense storage, row kernels and validators the solver is built on
//	render/            text, table and JSON output of a trace
//	internal/config/   koanf-layered CLI configuration
//	internal/input/    rows from flags, stdin or YAML/JSON files
//	internal/cli/      the cobra command tree
//	cmd/gausstrace/    the binary
//
// Quick example:
//
//	gausstrace solve --row "2 1 -1 8" --row "-3 -1 2 -11" --row "-2 1 2 -3"
//
//	prints the elimination trace and x1 = 2, x2 = 3, x3 = -1.
//
//	go get github.com/katalvlaran/gausstrace
package gausstrace
