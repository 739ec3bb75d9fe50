// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gausstrace/gauss"
)

// Format selects an output representation.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatText, FormatTable, FormatJSON}

var (
	// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
	ErrUnknownFormat = errors.New("render: unknown format")

	// ErrNilResult indicates that Render was called without a result.
	ErrNilResult = errors.New("render: nil result")
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w %q (want text, table or json)", ErrUnknownFormat, s)
}

// Render writes res, and solveErr if the solve failed, to w in format f.
// A failed solve is rendered, not returned: the error is only non-nil when
// writing itself fails or the arguments are invalid.
func Render(w io.Writer, f Format, res *gauss.Result, solveErr error, opts ...Option) error {
	if res == nil {
		return ErrNilResult
	}
	o := gatherOptions(opts...)

	switch f {
	case FormatText:
		return renderText(w, res, solveErr, o)
	case FormatTable:
		return renderTable(w, res, solveErr, o)
	case FormatJSON:
		return renderJSON(w, res, solveErr)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
	}
}

// failedIn reports the phase of a solver failure, if err is one.
func failedIn(err error) (gauss.Phase, bool) {
	var se *gauss.SingularMatrixError
	if errors.As(err, &se) {
		return se.Phase, true
	}
	var ie *gauss.NumericalInstabilityError
	if errors.As(err, &ie) {
		return ie.Phase, true
	}

	return 0, false
}

// errorKind is the stable machine-readable name of a solve failure.
func errorKind(err error) string {
	switch {
	case errors.Is(err, gauss.ErrShape):
		return "shape"
	case errors.Is(err, gauss.ErrValue):
		return "value"
	case errors.Is(err, gauss.ErrSingular):
		return "singular"
	case errors.Is(err, gauss.ErrInstability):
		return "instability"
	case errors.Is(err, gauss.ErrNilMatrix):
		return "nil_matrix"
	default:
		return "internal"
	}
}
