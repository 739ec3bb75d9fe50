// Package cli provides the gausstrace command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gausstrace/internal/config"
	"github.com/katalvlaran/gausstrace/render"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// runKey stores the per-invocation state in the command context.
type runKey struct{}

// run is what PersistentPreRunE resolves for every command.
type run struct {
	cfg    *config.Config
	logger *slog.Logger
}

func fromContext(ctx context.Context) *run {
	if r, ok := ctx.Value(runKey{}).(*run); ok {
		return r
	}

	return &run{
		cfg: &config.Config{
			Format:    config.DefaultFormat,
			Precision: config.DefaultPrecision,
			Tolerance: config.DefaultTolerance,
			LogLevel:  config.DefaultLogLevel,
			Color:     config.DefaultColor,
		},
		logger: slog.New(slog.DiscardHandler),
	}
}

// NewRootCmd creates the root command. Each call returns an independent
// tree, so tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "gausstrace",
		Short: "Solve small linear systems and show every elimination step",
		Long: `gausstrace solves Ax = b for 2 to 10 unknowns by Gaussian elimination with
partial pivoting, and prints each row swap, elimination, back-substitution
step and a residual check of the result.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			id := uuid.NewString()
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel).With(slog.String("run_id", id))
			if cfg.File != "" {
				logger.Debug("using config file", slog.String("path", cfg.File))
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, runKey{}, &run{cfg: cfg, logger: logger}))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./gausstrace.yaml)")
	pf.StringP("format", "f", config.DefaultFormat, "Output format (text|table|json)")
	pf.IntP("precision", "p", config.DefaultPrecision, "Decimal places in text and table output")
	pf.Float64("tolerance", config.DefaultTolerance, "Pivot magnitude treated as zero")
	pf.String("log-level", config.DefaultLogLevel, "Log level on stderr (debug|info|warn|error)")
	pf.String("color", config.DefaultColor, "Styled headings (auto|always|never)")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "table", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newSolveCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command with os.Args and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return ExitCode(err)
	}

	return 0
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// styleFor resolves the color setting against the output writer.
func styleFor(mode string, out io.Writer) render.Style {
	switch {
	case mode == "always":
		return render.StyleAlways
	case mode == "auto" && isTerminal(out):
		return render.StyleAuto
	default:
		return render.StylePlain
	}
}
