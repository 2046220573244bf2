package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/models"
)

// assignmentRepository is the PostgreSQL-backed implementation of
// [AssignmentRepository]. Same owner-scoped contract as the other resource
// repositories.
type assignmentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAssignmentRepository(db *DB, logger *logger.Logger) AssignmentRepository {
	logger.Debug().Msg("creating assignment repository")
	return &assignmentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *assignmentRepository) List(ctx context.Context, userID int64) ([]models.Assignment, error) {
	log := logger.FromContext(ctx)

	query, args, err := listAssignments(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.List").Msg("error listing assignments")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	assignments := make([]models.Assignment, 0)
	for rows.Next() {
		var a models.Assignment
		if err = rows.Scan(&a.ID, &a.SubjectID, &a.Title, &a.Description, &a.DueDate, &a.Status, &a.UserID); err != nil {
			log.Err(err).Str("func", "*assignmentRepository.List").Msg("error scanning assignment row")
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan assignment rows: %w", err)
	}

	return assignments, nil
}

func (r *assignmentRepository) Create(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertAssignment(assignment).ToSql()
	if err != nil {
		return models.Assignment{}, fmt.Errorf("error building sql query: %w", err)
	}

	var created models.Assignment
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&created.ID, &created.SubjectID, &created.Title, &created.Description, &created.DueDate, &created.Status, &created.UserID); err != nil {
		log.Err(err).Str("func", "*assignmentRepository.Create").Msg("error creating assignment")
		return models.Assignment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *assignmentRepository) Update(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateAssignment(assignment).ToSql()
	if err != nil {
		return models.Assignment{}, fmt.Errorf("error building sql query: %w", err)
	}

	var updated models.Assignment
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&updated.ID, &updated.SubjectID, &updated.Title, &updated.Description, &updated.DueDate, &updated.Status, &updated.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Assignment{}, ErrRowNotFound
		}

		log.Err(err).Str("func", "*assignmentRepository.Update").Msg("error updating assignment")
		return models.Assignment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *assignmentRepository) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteRow(models.Assignment{}.TableName(), userID, id).ToSql()
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.Delete").Msg("error deleting assignment")
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
