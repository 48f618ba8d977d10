// Package store provides SQLite-backed storage for recorded trace sessions.
//
// Each session row carries the content hash of its canonical JSON form, and
// its events are stored one row per platform call keyed by (session_id, seq).
//
// # Ordering
//
// Events are always read ORDER BY seq ASC. Sessions are listed ORDER BY
// id ASC; session IDs are UUIDv7 in normal operation, so this is creation
// order. No timestamps are stored.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: events must reference an existing session
package store
