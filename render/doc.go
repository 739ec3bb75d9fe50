// Package render turns a gauss.Result into human- or machine-readable output.
//
// Three formats are supported:
//
//	text   step narration with "[ a b | rhs ]" matrix rows
//	table  the same narration with matrices drawn as box tables
//	json   one document: solution, max residual, error and the full trace
//
// Text and table output walk the trace in order under the phase headings
// FORWARD ELIMINATION PHASE, BACK SUBSTITUTION PHASE, FINAL SOLUTION and
// VERIFICATION. A phase the solve never reached gets no heading.
//
// Rendering never re-runs or second-guesses the solver; it only formats the
// events it is given.
package render
