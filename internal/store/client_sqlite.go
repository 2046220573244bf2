// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/studysesh/study-sesh/internal/logger"
)

// DoneStore keeps per-assignment completion flags in a local SQLite file.
// Completion is a client-side concern: the server never sees these marks,
// so they survive logout but stay on the machine that set them.
type DoneStore struct {
	db     *sql.DB
	logger *logger.Logger
}

const createDoneTable = `CREATE TABLE IF NOT EXISTS done_assignments (
    assignment_id INTEGER PRIMARY KEY
);`

// NewDoneStore opens (or creates) the SQLite file at path and ensures the
// schema exists.
func NewDoneStore(ctx context.Context, path string, log *logger.Logger) (*DoneStore, error) {
	log.Debug().Str("path", path).Msg("opening local done store")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening local store: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("error connecting to local store: %w", err)
	}

	if _, err = db.ExecContext(ctx, createDoneTable); err != nil {
		return nil, fmt.Errorf("error preparing local store schema: %w", err)
	}

	return &DoneStore{db: db, logger: log}, nil
}

// SetDone marks or unmarks an assignment as completed.
func (s *DoneStore) SetDone(ctx context.Context, assignmentID int64, done bool) error {
	var err error
	if done {
		_, err = s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO done_assignments (assignment_id) VALUES (?);`, assignmentID)
	} else {
		_, err = s.db.ExecContext(ctx,
			`DELETE FROM done_assignments WHERE assignment_id = ?;`, assignmentID)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*DoneStore.SetDone").Msg("error writing done flag")
		return fmt.Errorf("unexpected local store error: %w", err)
	}

	return nil
}

// IsDone reports whether an assignment is marked completed.
func (s *DoneStore) IsDone(ctx context.Context, assignmentID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM done_assignments WHERE assignment_id = ?;`, assignmentID).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("unexpected local store error: %w", err)
	}

	return true, nil
}

// DoneSet returns the ids of every assignment marked completed.
func (s *DoneStore) DoneSet(ctx context.Context) (map[int64]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT assignment_id FROM done_assignments;`)
	if err != nil {
		return nil, fmt.Errorf("unexpected local store error: %w", err)
	}
	defer rows.Close()

	done := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan done flag: %w", err)
		}
		done[id] = true
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan done flags: %w", err)
	}

	return done, nil
}

// Close releases the underlying SQLite handle.
func (s *DoneStore) Close() error {
	return s.db.Close()
}
