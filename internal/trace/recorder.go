package trace

import (
	"github.com/roach88/libcore/internal/platform"
)

// Op names a platform operation.
type Op string

// Recorded platform operations.
const (
	OpInit     Op = "init"
	OpShutdown Op = "shutdown"
	OpPrint    Op = "print"
)

// Event is one platform call. Message is only meaningful for OpPrint.
type Event struct {
	Seq     int64  `json:"seq"`
	Op      Op     `json:"op"`
	Message string `json:"message,omitempty"`
}

// Recorder is a platform.Platform that records calls before forwarding
// them to an inner platform.
//
// Like the sequencer it decorates, a Recorder is meant for a single caller.
type Recorder struct {
	inner  platform.Platform
	clock  *Clock
	events []Event
}

var _ platform.Platform = (*Recorder)(nil)

// NewRecorder wraps inner. A nil clock starts a fresh one.
// Panics if inner is nil.
func NewRecorder(inner platform.Platform, clock *Clock) *Recorder {
	if inner == nil {
		panic("trace: nil platform")
	}
	if clock == nil {
		clock = NewClock()
	}
	return &Recorder{inner: inner, clock: clock}
}

// Init records OpInit and forwards.
func (r *Recorder) Init() {
	r.record(OpInit, "")
	r.inner.Init()
}

// Shutdown records OpShutdown and forwards.
func (r *Recorder) Shutdown() {
	r.record(OpShutdown, "")
	r.inner.Shutdown()
}

// Print records OpPrint with msg and forwards.
func (r *Recorder) Print(msg string) {
	r.record(OpPrint, msg)
	r.inner.Print(msg)
}

// Events returns a copy of the recorded events in call order.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Session packages the recorded events under id.
func (r *Recorder) Session(id, backend string) Session {
	return Session{ID: id, Backend: backend, Events: r.Events()}
}

func (r *Recorder) record(op Op, msg string) {
	r.events = append(r.events, Event{Seq: r.clock.Next(), Op: op, Message: msg})
}
