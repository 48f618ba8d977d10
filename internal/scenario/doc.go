// Package scenario runs YAML conformance scenarios against the core
// sequencer and a real platform backend.
//
// # Scenario Format
//
//	name: init_run
//	description: "init then run prints the running line once"
//	backend: unix              # unix | stub, default unix
//	session_id: init_run       # optional, default a fresh UUIDv7
//	steps:
//	  - op: init               # init | run | shutdown | print
//	  - op: run
//	  - op: print
//	    message: "hello\n"
//	assertions:
//	  - type: output_equals
//	    output: "platform-unix: initialized\ncore: running\n"
//	  - type: trace_count
//	    op: print
//	    count: 1
//
// Files are checked against the embedded CUE schema (scenario.cue) before
// being decoded, and decoding rejects unknown fields.
//
// # Assertion Types
//
//   - output_equals: the backend output equals output exactly
//   - output_empty: the backend produced no output
//   - printed_equals: the Print messages, concatenated, equal output
//     (the stub backend discards them, but they are still recorded)
//   - trace_order: the platform ops appear in the given order (gaps allowed)
//   - trace_count: the platform op was called exactly count times
//   - final_state: the sequencer's initialized flag after the last step
//
// Steps init, run and shutdown call the sequencer. A print step calls the
// platform directly, through the same recorder.
package scenario
