// Package trace records the calls a sequencer makes into its platform.
//
// A Recorder wraps any platform.Platform, forwards every call unchanged and
// appends an Event stamped by a logical Clock. The recorded Session can be
// serialized to canonical JSON for golden comparison and content hashing,
// and persisted by the store package.
//
// Ordering uses Clock sequence numbers only. Wall-clock time is never
// recorded, so identical call sequences produce identical sessions.
package trace
