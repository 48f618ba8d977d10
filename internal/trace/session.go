package trace

// Session is the recorded call history of one sequencer run.
type Session struct {
	ID      string  `json:"id"`
	Backend string  `json:"backend"`
	Events  []Event `json:"events"`
}

// Ops returns the operation of each event, in order.
func (s Session) Ops() []Op {
	ops := make([]Op, len(s.Events))
	for i, e := range s.Events {
		ops[i] = e.Op
	}
	return ops
}

// Count returns how many events have the given op.
func (s Session) Count(op Op) int {
	n := 0
	for _, e := range s.Events {
		if e.Op == op {
			n++
		}
	}
	return n
}

// Printed concatenates the messages of all print events. For the unix
// backend this equals the text written by Print calls.
func (s Session) Printed() string {
	var out []byte
	for _, e := range s.Events {
		if e.Op == OpPrint {
			out = append(out, e.Message...)
		}
	}
	return string(out)
}
