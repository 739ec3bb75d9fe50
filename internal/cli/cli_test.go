package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gausstrace/gauss"
	"github.com/katalvlaran/gausstrace/internal/config"
	"github.com/katalvlaran/gausstrace/internal/input"
	"github.com/katalvlaran/gausstrace/render"
)

// execute runs the command tree with args and stdin, returning stdout,
// stderr and the command error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

var textbookRows = []string{"--row", "2 1 -1 8", "--row", "-3,-1,2,-11", "--row", "-2 1 2 -3"}

func TestSolve_RowFlags(t *testing.T) {
	stdout, stderr, err := execute(t, "", append([]string{"solve"}, textbookRows...)...)
	require.NoError(t, err)
	assert.Empty(t, stderr, "default log level is warn")

	assert.Contains(t, stdout, "GAUSSIAN ELIMINATION SOLVER")
	assert.Contains(t, stdout, "Step: Swapped Row 1 with Row 2 (partial pivoting)")
	assert.Contains(t, stdout, "FINAL SOLUTION")
	assert.Contains(t, stdout, "x1 = 2.000000")
	assert.Contains(t, stdout, "x2 = 3.000000")
	assert.Contains(t, stdout, "x3 = -1.000000")
	assert.Contains(t, stdout, "VERIFICATION")
}

func TestSolve_StdinJSON(t *testing.T) {
	stdout, _, err := execute(t, "# 2x2\n1,2,3\n3 4 5\n", "solve", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Solution []float64        `json:"solution"`
		Trace    []map[string]any `json:"trace"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	require.Len(t, doc.Solution, 2)
	assert.InDelta(t, -1.0, doc.Solution[0], 1e-12)
	assert.InDelta(t, 2.0, doc.Solution[1], 1e-12)
	assert.Equal(t, "matrix_snapshot", doc.Trace[0]["kind"])
}

func TestSolve_FileAndTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - [4, -2, 1, 11]\n  - [-2, 4, -2, -16]\n  - [1, -2, 4, 17]\n"), 0o600))

	stdout, _, err := execute(t, "", "solve", "--file", path, "-f", "table", "-p", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "UNKNOWN")
	assert.Contains(t, stdout, "-2.00")
	assert.Contains(t, stdout, "3.00")
}

func TestSolve_RowAndFileConflict(t *testing.T) {
	_, _, err := execute(t, "", "solve", "--row", "1 2 3", "--file", "x.yaml")
	require.Error(t, err)
}

func TestSolve_Singular(t *testing.T) {
	stdout, stderr, err := execute(t, "", "solve", "--row", "0 1 5", "--row", "0 2 10")
	require.Error(t, err)
	assert.ErrorIs(t, err, gauss.ErrSingular)
	assert.Equal(t, ExitUnsolved, ExitCode(err))

	assert.Contains(t, stdout, "Error: System has no unique solution")
	assert.NotContains(t, stdout, "FINAL SOLUTION")
	assert.Contains(t, stderr, "solve failed")
	assert.Contains(t, stderr, "run_id=")
}

func TestSolve_BadCell(t *testing.T) {
	stdout, _, err := execute(t, "", "solve", "--row", "1 abc 3", "--row", "3 4 5")
	require.Error(t, err)
	assert.ErrorIs(t, err, gauss.ErrValue)
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, stdout, "row 1, column 2")
}

func TestSolve_EmptyStdin(t *testing.T) {
	_, _, err := execute(t, "\n\n", "solve")
	assert.ErrorIs(t, err, input.ErrNoRows)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestSolve_ToleranceFlag(t *testing.T) {
	rows := []string{"solve", "--row", "1e-6 0 1", "--row", "0 1e-6 1"}

	_, _, err := execute(t, "", rows...)
	require.NoError(t, err)

	_, _, err = execute(t, "", append(rows, "--tolerance", "1e-3")...)
	assert.ErrorIs(t, err, gauss.ErrSingular)
}

func TestSolve_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "", append([]string{"solve", "--precision", "99"}, textbookRows...)...)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestSolve_ConfigFileAndEnv(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "gausstrace.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("precision: 1\nlog_level: info\n"), 0o600))

	stdout, stderr, err := execute(t, "", append([]string{"solve", "--config", cfgPath}, textbookRows...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "x1 = 2.0\n")
	assert.Contains(t, stderr, "msg=solved")
	assert.Contains(t, stderr, "swaps=2")

	t.Setenv("GAUSSTRACE_FORMAT", "json")
	stdout, _, err = execute(t, "", append([]string{"solve", "--config", cfgPath}, textbookRows...)...)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "gausstrace "+Version+" (commit "+GitCommit+")\n", stdout)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitUsage, ExitCode(&gauss.ShapeError{Rows: 1, Row: -1}))
	assert.Equal(t, ExitUnsolved, ExitCode(&gauss.NumericalInstabilityError{}))
	assert.Equal(t, ExitUsage, ExitCode(input.ErrMalformed))
}

func TestStyleFor(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, render.StyleAlways, styleFor("always", &buf))
	assert.Equal(t, render.StylePlain, styleFor("never", &buf))
	assert.Equal(t, render.StylePlain, styleFor("auto", &buf), "a buffer is not a terminal")
}

func TestSolve_ColorAlways(t *testing.T) {
	stdout, _, err := execute(t, "", append([]string{"solve", "--color", "always"}, textbookRows...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "\x1b[")
}
