// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/models"
)

// subjectRepository is the PostgreSQL-backed implementation of
// [SubjectRepository]. Every statement it issues is owner-scoped: lists
// filter by user_id, updates and deletes match on (id AND user_id).
type subjectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSubjectRepository constructs a [SubjectRepository] backed by the
// provided database connection and logger.
func NewSubjectRepository(db *DB, logger *logger.Logger) SubjectRepository {
	logger.Debug().Msg("creating subject repository")
	return &subjectRepository{
		db:     db,
		logger: logger,
	}
}

// List returns every subject owned by userID, ordered by id.
func (r *subjectRepository) List(ctx context.Context, userID int64) ([]models.Subject, error) {
	log := logger.FromContext(ctx)

	query, args, err := listSubjects(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*subjectRepository.List").Msg("error listing subjects")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	subjects := make([]models.Subject, 0)
	for rows.Next() {
		var s models.Subject
		if err = rows.Scan(&s.ID, &s.Name, &s.Description, &s.UserID); err != nil {
			log.Err(err).Str("func", "*subjectRepository.List").Msg("error scanning subject row")
			return nil, fmt.Errorf("failed to scan subject row: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan subject rows: %w", err)
	}

	return subjects, nil
}

// Create inserts the subject with its owner already set and returns the row
// with the server-assigned id.
func (r *subjectRepository) Create(ctx context.Context, subject models.Subject) (models.Subject, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertSubject(subject).ToSql()
	if err != nil {
		return models.Subject{}, fmt.Errorf("error building sql query: %w", err)
	}

	var created models.Subject
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&created.ID, &created.Name, &created.Description, &created.UserID); err != nil {
		log.Err(err).Str("func", "*subjectRepository.Create").Msg("error creating subject")
		return models.Subject{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// Update rewrites the subject's fields in place. Returns [ErrRowNotFound]
// when no row matches (id AND owner) — the caller cannot tell a foreign row
// from a missing one.
func (r *subjectRepository) Update(ctx context.Context, subject models.Subject) (models.Subject, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateSubject(subject).ToSql()
	if err != nil {
		return models.Subject{}, fmt.Errorf("error building sql query: %w", err)
	}

	var updated models.Subject
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&updated.ID, &updated.Name, &updated.Description, &updated.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Subject{}, ErrRowNotFound
		}

		log.Err(err).Str("func", "*subjectRepository.Update").Msg("error updating subject")
		return models.Subject{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// Delete removes the subject matching (id AND owner). Returns
// [ErrRowNotFound] when nothing matched.
func (r *subjectRepository) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteRow(models.Subject{}.TableName(), userID, id).ToSql()
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*subjectRepository.Delete").Msg("error deleting subject")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrRowNotFound
	}

	return nil
}
