package scenario

import (
	"fmt"
	"strings"

	"github.com/roach88/libcore/internal/trace"
)

// AssertionError describes a failed assertion with the full trace attached.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Trace    []trace.Event
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for _, event := range e.Trace {
		if event.Op == trace.OpPrint {
			fmt.Fprintf(&buf, "  [%d] %s %q\n", event.Seq, event.Op, event.Message)
			continue
		}
		fmt.Fprintf(&buf, "  [%d] %s\n", event.Seq, event.Op)
	}

	return buf.String()
}

// EvaluateAssertions checks every assertion and returns one message per
// failure, in assertion order.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var failures []string
	for i, a := range assertions {
		if err := evaluate(result, a); err != nil {
			failures = append(failures, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return failures
}

func evaluate(result *Result, a Assertion) error {
	switch a.Type {
	case AssertOutputEquals:
		return assertOutput(result, a.Output, AssertOutputEquals)
	case AssertOutputEmpty:
		return assertOutput(result, "", AssertOutputEmpty)
	case AssertPrintedEquals:
		return assertPrinted(result.Session, a.Output)
	case AssertTraceOrder:
		return assertTraceOrder(result.Session, a.Ops)
	case AssertTraceCount:
		return assertTraceCount(result.Session, a.Op, *a.Count)
	case AssertFinalState:
		return assertFinalState(result, *a.Initialized)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func assertOutput(result *Result, want, kind string) error {
	if result.Output == want {
		return nil
	}
	return &AssertionError{
		Type:     kind,
		Expected: fmt.Sprintf("output %q", want),
		Actual:   fmt.Sprintf("output %q", result.Output),
		Trace:    result.Session.Events,
	}
}

// assertPrinted compares the messages handed to Print, independent of
// whether the backend wrote them anywhere.
func assertPrinted(sess trace.Session, want string) error {
	got := sess.Printed()
	if got == want {
		return nil
	}
	return &AssertionError{
		Type:     AssertPrintedEquals,
		Expected: fmt.Sprintf("printed %q", want),
		Actual:   fmt.Sprintf("printed %q", got),
		Trace:    sess.Events,
	}
}

// assertTraceOrder checks that ops occur as a subsequence of the trace.
func assertTraceOrder(sess trace.Session, ops []trace.Op) error {
	next := 0
	for _, e := range sess.Events {
		if next < len(ops) && e.Op == ops[next] {
			next++
		}
	}
	if next == len(ops) {
		return nil
	}
	return &AssertionError{
		Type:     AssertTraceOrder,
		Expected: fmt.Sprintf("ops in order %v", ops),
		Actual:   fmt.Sprintf("matched %d of %d, trace ops %v", next, len(ops), sess.Ops()),
		Trace:    sess.Events,
	}
}

func assertTraceCount(sess trace.Session, op trace.Op, want int) error {
	got := sess.Count(op)
	if got == want {
		return nil
	}
	return &AssertionError{
		Type:     AssertTraceCount,
		Expected: fmt.Sprintf("%s called %d times", op, want),
		Actual:   fmt.Sprintf("%s called %d times", op, got),
		Trace:    sess.Events,
	}
}

func assertFinalState(result *Result, want bool) error {
	if result.Initialized == want {
		return nil
	}
	return &AssertionError{
		Type:     AssertFinalState,
		Expected: fmt.Sprintf("initialized=%t", want),
		Actual:   fmt.Sprintf("initialized=%t", result.Initialized),
		Trace:    result.Session.Events,
	}
}
