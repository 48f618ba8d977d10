package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/libcore/internal/store"
	"github.com/roach88/libcore/internal/trace"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	SessionID string
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Show stored sessions",
		Long: `Show sessions recorded by "libcore run --db" or "libcore test --db".

Without --session all sessions are listed. With --session the platform
calls of that session are shown in order.

Examples:
  libcore trace --db ./trace.db
  libcore trace --db ./trace.db --session 0192f0c1-...
  libcore trace --db ./trace.db --session init_run --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.SessionID, "session", "", "session ID to show")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	if opts.Config.Database == "" {
		return NewExitError(ExitCommandError, "a database is required (--db or LIBCORE_DATABASE)")
	}

	st, err := store.Open(opts.Config.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	out := opts.formatter(cmd)
	ctx := cmd.Context()

	if opts.SessionID == "" {
		summaries, err := st.ListSessions(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list sessions", err)
		}
		if out.JSON() {
			return out.Success(summaries)
		}
		w := cmd.OutOrStdout()
		if len(summaries) == 0 {
			fmt.Fprintln(w, "No sessions stored.")
			return nil
		}
		for _, s := range summaries {
			fmt.Fprintf(w, "%s  %-4s  %d events\n", s.ID, s.Backend, s.Events)
		}
		return nil
	}

	sess, err := st.ReadSession(ctx, opts.SessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return WrapExitError(ExitCommandError, "no such session", err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read session", err)
	}

	if out.JSON() {
		return out.Success(sess)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Session %s (backend %s)\n", sess.ID, sess.Backend)
	for _, e := range sess.Events {
		if e.Op == trace.OpPrint {
			fmt.Fprintf(w, "  [%d] %s %q\n", e.Seq, e.Op, e.Message)
			continue
		}
		fmt.Fprintf(w, "  [%d] %s\n", e.Seq, e.Op)
	}
	return nil
}
