package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/libcore/internal/core"
	"github.com/roach88/libcore/internal/platform"
	"github.com/roach88/libcore/internal/store"
	"github.com/roach88/libcore/internal/trace"
)

// Sequencer operations accepted by the run command.
var runOps = []string{"init", "run", "shutdown"}

// defaultRunOps is the full lifecycle.
var defaultRunOps = []string{"init", "run", "shutdown"}

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions

	// IDGenerator overrides session ID generation (for testing).
	// If nil, defaults to trace.UUIDv7Generator.
	IDGenerator trace.IDGenerator
}

// RunResult is the JSON payload of the run command.
type RunResult struct {
	SessionID   string        `json:"session_id"`
	Backend     string        `json:"backend"`
	Output      string        `json:"output"`
	Events      []trace.Event `json:"events"`
	Initialized bool          `json:"initialized"`
	Stored      bool          `json:"stored"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [init|run|shutdown]...",
		Short: "Drive the core sequencer",
		Long: `Drive the core sequencer through the given operations against the
configured platform backend. With no operations the full lifecycle
"init run shutdown" is used.

Backend output goes to stdout. With --db the recorded platform calls are
stored as a session that "libcore trace" can show later.

Examples:
  libcore run
  libcore run run init run shutdown run
  libcore run --backend stub --db ./trace.db
  libcore run --format json`,
		ValidArgs:     runOps,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSequence(opts, args, cmd)
		},
	}

	return cmd
}

func runSequence(opts *RunOptions, ops []string, cmd *cobra.Command) error {
	if len(ops) == 0 {
		ops = defaultRunOps
	}
	for _, op := range ops {
		if !slices.Contains(runOps, op) {
			return NewExitError(ExitCommandError, fmt.Sprintf("unknown operation %q: must be one of %v", op, runOps))
		}
	}

	cfg := opts.Config
	out := opts.formatter(cmd)
	logger := opts.Logger

	// JSON mode captures backend output so it can be embedded in the response.
	var captured bytes.Buffer
	var w io.Writer = cmd.OutOrStdout()
	if out.JSON() {
		w = &captured
	}

	p, err := platform.New(cfg.Backend, w)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to select backend", err)
	}

	rec := trace.NewRecorder(p, trace.NewClock())
	seq := core.New(rec, core.WithLogger(logger))

	logger.Debug("sequence starting", "backend", cfg.Backend, "ops", ops)
	for _, op := range ops {
		switch op {
		case "init":
			seq.Init()
		case "run":
			seq.Run()
		case "shutdown":
			seq.Shutdown()
		}
	}

	gen := opts.IDGenerator
	if gen == nil {
		gen = trace.UUIDv7Generator{}
	}
	sess := rec.Session(gen.Generate(), cfg.Backend)

	stored := false
	if cfg.Database != "" {
		if err := storeSession(cmd.Context(), cfg.Database, sess); err != nil {
			return WrapExitError(ExitCommandError, "failed to store session", err)
		}
		stored = true
		logger.Info("session stored", "session", sess.ID, "db", cfg.Database, "events", len(sess.Events))
	}

	if out.JSON() {
		return out.Success(RunResult{
			SessionID:   sess.ID,
			Backend:     sess.Backend,
			Output:      captured.String(),
			Events:      sess.Events,
			Initialized: seq.Initialized(),
			Stored:      stored,
		})
	}

	out.VerboseLog("session %s: %d platform calls", sess.ID, len(sess.Events))
	return nil
}

func storeSession(ctx context.Context, path string, sess trace.Session) error {
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	return st.WriteSession(ctx, sess)
}
