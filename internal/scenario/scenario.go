package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/libcore/internal/platform"
	"github.com/roach88/libcore/internal/trace"
)

// Scenario is a sequence of steps plus the assertions that must hold after
// the last step.
type Scenario struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Backend     string      `yaml:"backend,omitempty"`
	SessionID   string      `yaml:"session_id,omitempty"`
	Steps       []Step      `yaml:"steps"`
	Assertions  []Assertion `yaml:"assertions"`
}

// Step operations.
const (
	StepInit     = "init"
	StepRun      = "run"
	StepShutdown = "shutdown"
	StepPrint    = "print"
)

// Step is one call. Message is only used by print steps.
type Step struct {
	Op      string `yaml:"op"`
	Message string `yaml:"message,omitempty"`
}

// Assertion checks the output, trace or final state of a run.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Output is the exact expected backend output (output_equals), or the
	// concatenated Print messages (printed_equals).
	Output string `yaml:"output,omitempty"`

	// Ops is the expected op order (trace_order).
	Ops []trace.Op `yaml:"ops,omitempty"`

	// Op and Count are used by trace_count.
	Op    trace.Op `yaml:"op,omitempty"`
	Count *int     `yaml:"count,omitempty"`

	// Initialized is the expected flag (final_state).
	Initialized *bool `yaml:"initialized,omitempty"`
}

// Assertion type constants.
const (
	AssertOutputEquals  = "output_equals"
	AssertOutputEmpty   = "output_empty"
	AssertPrintedEquals = "printed_equals"
	AssertTraceOrder    = "trace_order"
	AssertTraceCount    = "trace_count"
	AssertFinalState    = "final_state"
)

// Load reads, schema-checks and decodes a scenario file.
// Unknown fields are rejected.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario from YAML bytes. See Load.
func Parse(data []byte) (*Scenario, error) {
	if err := checkSchema(data); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &s, nil
}

// backend returns the configured backend or the default.
func (s *Scenario) backend() string {
	if s.Backend == "" {
		return platform.BackendUnix
	}
	return s.Backend
}

// sessionID returns the pinned session_id, or a fresh ID from ids.
func (s *Scenario) sessionID(ids trace.IDGenerator) string {
	if s.SessionID == "" {
		return ids.Generate()
	}
	return s.SessionID
}

// validateScenario checks what the schema cannot express: per-type
// assertion requirements.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !platform.IsValidBackend(s.backend()) {
		return fmt.Errorf("unknown backend %q", s.Backend)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		switch step.Op {
		case StepInit, StepRun, StepShutdown:
			if step.Message != "" {
				return fmt.Errorf("steps[%d]: message is only allowed on print steps", i)
			}
		case StepPrint:
		default:
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case AssertOutputEquals, AssertOutputEmpty, AssertPrintedEquals:
	case AssertTraceOrder:
		if len(a.Ops) == 0 {
			return fmt.Errorf("assertions[%d]: ops list is required for trace_order", index)
		}
	case AssertTraceCount:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_count", index)
		}
		if a.Count == nil {
			return fmt.Errorf("assertions[%d]: count is required for trace_count", index)
		}
		if *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for trace_count", index)
		}
	case AssertFinalState:
		if a.Initialized == nil {
			return fmt.Errorf("assertions[%d]: initialized is required for final_state", index)
		}
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
