// Package platform defines the platform capability used by the core
// sequencer and its two interchangeable backends.
//
// The capability is three operations: Init, Shutdown and Print. Every
// operation is infallible. A backend is chosen once at startup (see New)
// and then held by whoever drives it; there is no runtime switching.
//
// # Backends
//
//   - stub: every operation is a no-op, Print discards its message.
//   - unix: a console backend that writes fixed lifecycle lines and passes
//     Print messages through verbatim, without adding a newline.
package platform
