// Package core sequences calls into a platform backend.
//
// A Sequencer owns a single initialized flag and moves between two states:
//
//	Uninitialized --Init--> Ready --Shutdown--> Uninitialized
//
// Run only has an effect in Ready. Shutdown is unguarded: it prints and
// shuts the platform down even if Init was never called.
//
// A Sequencer is meant for a single caller. It holds no locks.
package core
