package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gausstrace/gauss"
	"github.com/katalvlaran/gausstrace/internal/input"
	"github.com/katalvlaran/gausstrace/render"
)

type solveOptions struct {
	rows []string
	file string
}

func newSolveCommand() *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve an augmented system and print the trace",
		Long: `Solve reads an n×(n+1) augmented matrix [A | b], 2 <= n <= 10, from one of:

  --row flags     one row per flag, cells separated by commas or spaces
  --file          a YAML or JSON document ("rows: [[...], ...]" or a bare list)
  stdin           one row per line; blank lines and '#' comments are skipped`,
		Example: `  gausstrace solve --row "2 1 -1 8" --row "-3 -1 2 -11" --row "-2 1 2 -3"
  gausstrace solve --file system.yaml --format table
  printf '1,2,3\n3,4,5\n' | gausstrace solve --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.rows, "row", "r", nil, "Matrix row, repeatable")
	cmd.Flags().StringVar(&opts.file, "file", "", "YAML or JSON file holding the system")
	cmd.MarkFlagsMutuallyExclusive("row", "file")

	return cmd
}

func (o *solveOptions) cells(cmd *cobra.Command) ([][]string, error) {
	switch {
	case o.file != "":
		return input.ReadFile(o.file)
	case len(o.rows) > 0:
		return input.FromRows(o.rows)
	default:
		in := cmd.InOrStdin()
		if isTerminal(in) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Reading rows from stdin, one per line; end with Ctrl-D.")
		}

		return input.ReadLines(in)
	}
}

func runSolve(cmd *cobra.Command, o *solveOptions) error {
	r := fromContext(cmd.Context())
	log := r.logger

	format, err := render.ParseFormat(r.cfg.Format)
	if err != nil {
		return err
	}

	cells, err := o.cells(cmd)
	if err != nil {
		return err
	}

	res, solveErr := gauss.SolveText(cells,
		gauss.WithPivotTolerance(r.cfg.Tolerance),
		gauss.WithLogger(log),
	)

	out := cmd.OutOrStdout()
	if err = render.Render(out, format, res, solveErr,
		render.WithPrecision(r.cfg.Precision),
		render.WithStyle(styleFor(r.cfg.Color, out)),
	); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if solveErr != nil {
		log.Warn("solve failed", slog.Any("error", solveErr), slog.Int("events", len(res.Trace)))

		return solveErr
	}
	log.Info("solved",
		slog.Int("n", len(res.Solution)),
		slog.Int("swaps", res.Trace.Count(gauss.KindRowSwap)),
		slog.Int("eliminations", res.Trace.Count(gauss.KindEliminationStep)),
		slog.Float64("max_residual", res.MaxResidual()))

	return nil
}
