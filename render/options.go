// SPDX-License-Identifier: MIT

package render

const (
	// DefaultPrecision is the number of decimals used for every number in
	// text and table output.
	DefaultPrecision = 6

	// MaxPrecision bounds WithPrecision; float64 carries ~15-17 digits.
	MaxPrecision = 15

	panicPrecisionInvalid = "render: WithPrecision: precision must be in [0, 15]"
)

// Option configures a Renderer.
type Option func(*Options)

// Style controls lipgloss styling of headings and error lines.
type Style int

const (
	// StylePlain writes no escape sequences.
	StylePlain Style = iota
	// StyleAuto styles only when the writer's color profile allows it.
	StyleAuto
	// StyleAlways forces 256-color output, e.g. for piping into a pager.
	StyleAlways
)

// Options holds the effective rendering configuration.
type Options struct {
	precision int   // DefaultPrecision
	style     Style // StylePlain
}

// WithPrecision sets the decimal places for matrix cells, factors,
// expressions and results. Residual errors always use scientific notation.
// Panics when p is outside [0, MaxPrecision].
func WithPrecision(p int) Option {
	if p < 0 || p > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithStyle selects heading and error styling.
func WithStyle(s Style) Option {
	return func(o *Options) { o.style = s }
}

func gatherOptions(user ...Option) Options {
	o := Options{precision: DefaultPrecision}
	for _, set := range user {
		set(&o)
	}

	return o
}
