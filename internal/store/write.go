package store

import (
	"context"
	"fmt"

	"github.com/roach88/libcore/internal/trace"
)

// WriteSession stores a session and its events in one transaction.
//
// Rewriting a stored session with identical content is a no-op, which makes
// retries safe. Rewriting it with different content returns
// ErrSessionConflict and leaves the stored session untouched.
func (s *Store) WriteSession(ctx context.Context, sess trace.Session) error {
	if sess.ID == "" {
		return fmt.Errorf("write session: empty session id")
	}

	hash, err := trace.Hash(sess)
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write session: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.ExecContext(ctx, `
		INSERT INTO sessions (id, backend, content_hash)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, sess.ID, sess.Backend, hash)
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if inserted == 0 {
		var storedHash string
		err := tx.QueryRowContext(ctx, `
			SELECT content_hash FROM sessions WHERE id = ?
		`, sess.ID).Scan(&storedHash)
		if err != nil {
			return fmt.Errorf("write session: %w", err)
		}
		if storedHash != hash {
			return fmt.Errorf("write session %q: %w", sess.ID, ErrSessionConflict)
		}
		return nil
	}

	for _, e := range sess.Events {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO events (session_id, seq, op, message)
			VALUES (?, ?, ?, ?)
		`, sess.ID, e.Seq, string(e.Op), e.Message)
		if err != nil {
			return fmt.Errorf("write session: event seq=%d: %w", e.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write session: commit: %w", err)
	}
	return nil
}
