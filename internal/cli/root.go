package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/libcore/internal/config"
)

// RootOptions holds global flags and the configuration resolved from them.
type RootOptions struct {
	ConfigFile string

	// Config is set by the root PersistentPreRunE before any subcommand runs.
	Config *config.Config

	// Logger writes diagnostics to the command's stderr.
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the libcore CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

// Execute runs the libcore CLI and returns the process exit code.
func Execute() int {
	opts := &RootOptions{}
	return execute(newRootCommand(opts), opts)
}

// execute runs cmd and reports a returned error: as an error envelope on
// stdout with --format json, otherwise as one line on stderr.
func execute(cmd *cobra.Command, opts *RootOptions) int {
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	if opts.Config != nil && opts.formatter(cmd).JSON() {
		var exitErr *ExitError
		if errors.As(err, &exitErr) && exitErr.Reported {
			return exitErr.Code
		}
		if ferr := opts.formatter(cmd).Error(errorCode(err), err.Error(), nil); ferr == nil {
			return GetExitCode(err)
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
	return GetExitCode(err)
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libcore",
		Short: "libcore - platform sequencer and arithmetic helpers",
		Long: `Drive the core sequencer against a platform backend, evaluate the
arithmetic helpers, and run recorded conformance scenarios.

Configuration is read from libcore.yaml (or --config), LIBCORE_*
environment variables and flags, in increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigFile, cmd.Flags())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load configuration", err)
			}
			if err := cfg.Validate(); err != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", err)
			}
			opts.Config = cfg
			opts.Logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			slog.SetDefault(opts.Logger)

			opts.Logger.Debug("configuration loaded",
				"file", cfg.File,
				"backend", cfg.Backend,
				"format", cfg.Format,
			)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default ./libcore.yaml if present)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	cmd.PersistentFlags().String("format", config.DefaultFormat, "output format (json|text)")
	cmd.PersistentFlags().String("backend", config.DefaultBackend, "platform backend (unix|stub)")
	cmd.PersistentFlags().String("db", "", "path to SQLite trace database")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewCalcCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))

	return cmd
}

// newLogger builds the text logger used by all commands.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// formatter returns an OutputFormatter bound to cmd's writers.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Config.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Config.Verbose,
	}
}
