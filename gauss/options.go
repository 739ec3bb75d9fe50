// SPDX-License-Identifier: MIT

// Package gauss: functional configuration for Solve.
//   - Option / Options (functional options with unexported state),
//   - documented defaults,
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, the single place defaults and setters are resolved.
package gauss

import (
	"log/slog"
	"math"
)

const panicToleranceInvalid = "gauss: WithPivotTolerance: tolerance must be finite and non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol    float64     // DefaultPivotTolerance
	sink   func(Event) // nil: no streaming
	logger *slog.Logger
}

// WithPivotTolerance overrides DefaultPivotTolerance for both the pivot
// check and the back-substitution diagonal check. A tolerance of 0 rejects
// only exact zeros.
// Panics when tol is NaN, ±Inf or negative.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithSink streams every event to fn as it is appended to the trace.
// fn runs synchronously on the solving goroutine; the returned Result still
// carries the full trace. A nil fn disables streaming.
func WithSink(fn func(Event)) Option {
	return func(o *Options) { o.sink = fn }
}

// WithLogger routes solver diagnostics to l. A nil logger keeps the
// default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies user setters on top of the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:    DefaultPivotTolerance,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
