package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/libcore/internal/trace"
)

var (
	// ErrSessionNotFound is returned when no session has the requested ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrHashMismatch is returned when stored events no longer hash to the
	// content hash recorded at write time.
	ErrHashMismatch = errors.New("session content hash mismatch")

	// ErrSessionConflict is returned when a session ID is rewritten with
	// different content.
	ErrSessionConflict = errors.New("session already stored with different content")
)

// SessionSummary is one row of ListSessions.
type SessionSummary struct {
	ID          string `json:"id"`
	Backend     string `json:"backend"`
	Events      int    `json:"events"`
	ContentHash string `json:"content_hash"`
}

// ReadSession loads a session and its events ordered by seq, and verifies
// the stored content hash.
func (s *Store) ReadSession(ctx context.Context, id string) (trace.Session, error) {
	sess := trace.Session{ID: id}

	var storedHash string
	err := s.db.QueryRowContext(ctx, `
		SELECT backend, content_hash FROM sessions WHERE id = ?
	`, id).Scan(&sess.Backend, &storedHash)
	if errors.Is(err, sql.ErrNoRows) {
		return trace.Session{}, fmt.Errorf("read session %q: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return trace.Session{}, fmt.Errorf("read session %q: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, op, message FROM events
		WHERE session_id = ?
		ORDER BY seq ASC
	`, id)
	if err != nil {
		return trace.Session{}, fmt.Errorf("read session %q events: %w", id, err)
	}
	defer rows.Close()

	sess.Events = []trace.Event{}
	for rows.Next() {
		var e trace.Event
		var op string
		if err := rows.Scan(&e.Seq, &op, &e.Message); err != nil {
			return trace.Session{}, fmt.Errorf("scan event: %w", err)
		}
		e.Op = trace.Op(op)
		sess.Events = append(sess.Events, e)
	}
	if err := rows.Err(); err != nil {
		return trace.Session{}, fmt.Errorf("iterate events: %w", err)
	}

	hash, err := trace.Hash(sess)
	if err != nil {
		return trace.Session{}, fmt.Errorf("read session %q: %w", id, err)
	}
	if hash != storedHash {
		return trace.Session{}, fmt.Errorf("read session %q: %w", id, ErrHashMismatch)
	}

	return sess, nil
}

// ListSessions returns a summary of every stored session ordered by ID.
func (s *Store) ListSessions(ctx context.Context) ([]SessionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.backend, s.content_hash, COUNT(e.seq)
		FROM sessions s
		LEFT JOIN events e ON e.session_id = s.id
		GROUP BY s.id
		ORDER BY s.id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	summaries := []SessionSummary{}
	for rows.Next() {
		var sum SessionSummary
		if err := rows.Scan(&sum.ID, &sum.Backend, &sum.ContentHash, &sum.Events); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return summaries, nil
}
