// Package input turns user-supplied systems into raw text cells for
// gauss.ParseAugmentedMatrix. It only splits and extracts; number parsing
// and shape checks stay in the solver so their errors carry row/column
// attribution regardless of the source.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoRows indicates input that contained no rows at all.
	ErrNoRows = errors.New("input: no rows")

	// ErrMalformed indicates a document that is not a list of rows of scalars.
	ErrMalformed = errors.New("input: malformed system document")
)

// SplitRow splits one row of text. A row containing a comma is split on
// commas, keeping empty cells so they can be reported; any other row is
// split on whitespace.
func SplitRow(line string) []string {
	if strings.Contains(line, ",") {
		cells := strings.Split(line, ",")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}

		return cells
	}

	return strings.Fields(line)
}

// FromRows splits each --row style argument into cells.
func FromRows(rows []string) ([][]string, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = SplitRow(r)
	}

	return out, nil
}

// ReadLines reads one row per line from r. Blank lines and lines starting
// with '#' are skipped.
func ReadLines(r io.Reader) ([][]string, error) {
	var out [][]string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, SplitRow(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrNoRows
	}

	return out, nil
}

// Document is the on-disk form of a system. JSON is accepted too, being a
// subset of YAML:
//
//	rows:
//	  - [2, 1, -1, 8]
//	  - [-3, -1, 2, -11]
//
// A bare top-level list of rows is also accepted.
type Document struct {
	Rows []yaml.Node `yaml:"rows"`
}

// ReadFile loads a system document from path.
func ReadFile(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	return Decode(data)
}

// Decode extracts the scalar text of every cell, in order. Cells keep
// their source spelling, so "1e400" or "abc" reach the solver unchanged.
func Decode(data []byte) ([][]string, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRows
		}

		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var rows []*yaml.Node
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}
	switch doc.Kind {
	case yaml.SequenceNode:
		rows = doc.Content
	case yaml.MappingNode:
		var d Document
		if err := doc.Decode(&d); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		for i := range d.Rows {
			rows = append(rows, &d.Rows[i])
		}
	default:
		return nil, fmt.Errorf("%w: want a list of rows or a \"rows\" key", ErrMalformed)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	out := make([][]string, len(rows))
	for i, r := range rows {
		if r.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: row %d (line %d) is not a list", ErrMalformed, i+1, r.Line)
		}
		out[i] = make([]string, len(r.Content))
		for j, c := range r.Content {
			if c.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: row %d, column %d (line %d) is not a scalar", ErrMalformed, i+1, j+1, c.Line)
			}
			out[i][j] = c.Value
		}
	}

	return out, nil
}
