package scenario

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/libcore/internal/core"
	"github.com/roach88/libcore/internal/platform"
	"github.com/roach88/libcore/internal/trace"
)

// Result is the outcome of running one scenario.
type Result struct {
	Name        string
	Output      string
	Session     trace.Session
	Initialized bool
	Errors      []string
}

// Passed reports whether every assertion held.
func (r *Result) Passed() bool {
	return len(r.Errors) == 0
}

// RunOptions configures RunWithOptions.
type RunOptions struct {
	// Logger receives sequencer diagnostics. If nil, they are discarded.
	Logger *slog.Logger

	// IDGenerator supplies the session ID of scenarios without session_id.
	// If nil, defaults to trace.UUIDv7Generator.
	IDGenerator trace.IDGenerator
}

// Run executes a scenario with a fresh backend and sequencer.
//
// The backend writes into an in-memory buffer, which becomes
// Result.Output. Assertion failures are reported in Result.Errors; the
// returned error is reserved for scenarios that cannot be executed.
func Run(s *Scenario) (*Result, error) {
	return RunWithOptions(s, RunOptions{})
}

// RunWithOptions is Run with an explicit logger and session ID source.
func RunWithOptions(s *Scenario, opts RunOptions) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ids := opts.IDGenerator
	if ids == nil {
		ids = trace.UUIDv7Generator{}
	}

	var out bytes.Buffer
	backend := s.backend()

	p, err := platform.New(backend, &out)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	rec := trace.NewRecorder(p, trace.NewClock())
	seq := core.New(rec, core.WithLogger(logger))

	for i, step := range s.Steps {
		switch step.Op {
		case StepInit:
			seq.Init()
		case StepRun:
			seq.Run()
		case StepShutdown:
			seq.Shutdown()
		case StepPrint:
			rec.Print(step.Message)
		default:
			return nil, fmt.Errorf("scenario %q: steps[%d]: unknown op %q", s.Name, i, step.Op)
		}
	}

	result := &Result{
		Name:        s.Name,
		Output:      out.String(),
		Session:     rec.Session(s.sessionID(ids), backend),
		Initialized: seq.Initialized(),
	}
	result.Errors = EvaluateAssertions(result, s.Assertions)

	logger.Debug("scenario finished",
		"name", s.Name,
		"backend", backend,
		"events", len(result.Session.Events),
		"passed", result.Passed(),
	)
	return result, nil
}
