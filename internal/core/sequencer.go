package core

import (
	"io"
	"log/slog"

	"github.com/roach88/libcore/internal/platform"
)

// Messages printed through the platform by the sequencer.
const (
	MsgRunning      = "core: running\n"
	MsgShuttingDown = "core: shutting down\n"
)

// Sequencer drives a platform through init, run and shutdown.
type Sequencer struct {
	platform    platform.Platform
	initialized bool
	logger      *slog.Logger
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithLogger sets the logger used for transition diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequencer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an uninitialized Sequencer bound to p.
// Panics if p is nil.
func New(p platform.Platform, opts ...Option) *Sequencer {
	if p == nil {
		panic("core: nil platform")
	}
	s := &Sequencer{
		platform: p,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init initializes the platform and marks the sequencer ready.
// Calling Init again re-initializes the platform.
func (s *Sequencer) Init() {
	s.platform.Init()
	s.initialized = true
	s.logger.Debug("core initialized")
}

// Run prints the running message if the sequencer is ready.
// It is a silent no-op otherwise.
func (s *Sequencer) Run() {
	if !s.initialized {
		s.logger.Debug("core run skipped", "reason", "not initialized")
		return
	}
	s.platform.Print(MsgRunning)
}

// Shutdown prints the shutdown message, shuts the platform down and clears
// the ready flag. It does not check whether Init was called.
func (s *Sequencer) Shutdown() {
	s.platform.Print(MsgShuttingDown)
	s.platform.Shutdown()
	s.initialized = false
	s.logger.Debug("core shut down")
}

// Initialized reports whether the sequencer is in the ready state.
func (s *Sequencer) Initialized() bool {
	return s.initialized
}
