package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/expect/internal/check"
	"github.com/roach88/expect/internal/config"
	"github.com/roach88/expect/internal/harness"
)

// RootOptions holds the command's flags.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	LogFormat  string // "json" | "text", overrides the config file
}

// ValidFormats defines the allowed log formats.
var ValidFormats = []string{"text", "json"}

// Env is what the command runs: the examples and the recorder their
// assertions report to.
type Env struct {
	Registry *harness.Registry
	Recorder *check.Recorder
}

// DefaultEnv returns the process-wide registry and recorder.
func DefaultEnv() Env {
	return Env{Registry: harness.Default(), Recorder: check.Default()}
}

// NewRootCommand creates the command that runs every registered example.
func NewRootCommand(env Env) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "expect",
		Short: "Run the registered examples",
		Long: `Run every example registered in this program and report the checks.

Exit codes:
  0 - All checks passed
  1 - One or more checks failed
  2 - Command error (bad flags, unreadable or invalid config)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.LogFormat != "" && !slices.Contains(ValidFormats, opts.LogFormat) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid log format %q: must be one of %v", opts.LogFormat, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExamples(cmd, env, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log each example at debug level")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format (json|text)")

	return cmd
}

func runExamples(cmd *cobra.Command, env Env, opts *RootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.LogFormat != "" {
		cfg.LogFormat = opts.LogFormat
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}

	env.Recorder.Configure(cfg.CheckOptions())
	logger := newLogger(cmd.ErrOrStderr(), cfg)

	result := harness.NewRunner(env.Registry, env.Recorder, logger).Run(cmd.Context())
	if err := harness.WriteSummary(cmd.OutOrStdout(), result); err != nil {
		return WrapExitError(ExitCommandError, "failed to write summary", err)
	}

	if !result.Pass {
		return NewExitError(ExitFailure,
			fmt.Sprintf("%d of %d checks failed", len(result.Failures), result.Checks))
	}
	return nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// Execute runs cmd and returns the process exit code. Command errors are
// written to cmd's error stream.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err != nil {
		reportError(cmd.ErrOrStderr(), err)
	}
	return GetExitCode(err)
}
