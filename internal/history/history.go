// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists past comparisons in a local SQLite database.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNotFound indicates no entry exists for the requested id.
	ErrNotFound = errors.New("history entry not found")
)

// =============================================================================
// ENTRY
// =============================================================================

// Entry is one recorded comparison.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	LeftHash  string    `json:"left_hash"`
	RightHash string    `json:"right_hash"`
	Keys      int       `json:"keys"`
	Changed   int       `json:"changed"`
	Summary   string    `json:"summary"`
	Rendered  string    `json:"rendered,omitempty"` // Plain-text diff
}

// =============================================================================
// STORE
// =============================================================================

// Store is a SQLite-backed comparison log.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS comparisons (
	id         TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	left_hash  TEXT NOT NULL,
	right_hash TEXT NOT NULL,
	keys       INTEGER NOT NULL,
	changed    INTEGER NOT NULL,
	summary    TEXT NOT NULL,
	rendered   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_comparisons_created ON comparisons(created_at DESC);
`

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Record stores a comparison. When the most recent entry has the same
// hash pair, the run is considered a repeat and no new row is written;
// the existing entry's id is returned.
func (s *Store) Record(e Entry) (string, error) {
	var lastID, lastLeft, lastRight string
	err := s.db.QueryRow(
		`SELECT id, left_hash, right_hash FROM comparisons ORDER BY created_at DESC, id LIMIT 1`,
	).Scan(&lastID, &lastLeft, &lastRight)
	if err == nil && lastLeft == e.LeftHash && lastRight == e.RightHash {
		return lastID, nil
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to read last entry: %w", err)
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err = s.db.Exec(
		`INSERT INTO comparisons (id, created_at, left_hash, right_hash, keys, changed, summary, rendered)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAt.Format(time.RFC3339Nano),
		e.LeftHash, e.RightHash, e.Keys, e.Changed, e.Summary, e.Rendered,
	)
	if err != nil {
		return "", fmt.Errorf("failed to record comparison: %w", err)
	}
	return e.ID, nil
}

// List returns the most recent entries, newest first, without the
// rendered diff text. limit <= 0 means no limit.
func (s *Store) List(limit int) ([]Entry, error) {
	query := `SELECT id, created_at, left_hash, right_hash, keys, changed, summary
	          FROM comparisons ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &created, &e.LeftHash, &e.RightHash, &e.Keys, &e.Changed, &e.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns one entry by id, including the rendered diff. A unique id
// prefix is accepted.
func (s *Store) Get(id string) (Entry, error) {
	var e Entry
	var created string
	err := s.db.QueryRow(
		`SELECT id, created_at, left_hash, right_hash, keys, changed, summary, rendered
		 FROM comparisons WHERE id = ? OR id LIKE ? || '%' ORDER BY created_at DESC LIMIT 1`,
		id, id,
	).Scan(&e.ID, &created, &e.LeftHash, &e.RightHash, &e.Keys, &e.Changed, &e.Summary, &e.Rendered)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to read history entry: %w", err)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	return e, nil
}

// Clear removes all entries.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM comparisons`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Prune keeps only the newest max entries. max <= 0 is a no-op.
func (s *Store) Prune(max int) error {
	if max <= 0 {
		return nil
	}
	_, err := s.db.Exec(
		`DELETE FROM comparisons WHERE id NOT IN (
			SELECT id FROM comparisons ORDER BY created_at DESC, id LIMIT ?
		)`, max)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM comparisons`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return n, nil
}
