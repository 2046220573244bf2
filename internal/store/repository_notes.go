package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// Note content is stored and returned as an opaque string; the serialized
// rich-text tree is never interpreted at this layer.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *noteRepository) List(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := listNotes(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.List").Msg("error listing notes")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		if err = rows.Scan(&n.ID, &n.SubjectID, &n.Title, &n.Content, &n.Tags, &n.UserID); err != nil {
			log.Err(err).Str("func", "*noteRepository.List").Msg("error scanning note row")
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan note rows: %w", err)
	}

	return notes, nil
}

func (r *noteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertNote(note).ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("error building sql query: %w", err)
	}

	var created models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&created.ID, &created.SubjectID, &created.Title, &created.Content, &created.Tags, &created.UserID); err != nil {
		log.Err(err).Str("func", "*noteRepository.Create").Msg("error creating note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *noteRepository) Update(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateNote(note).ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("error building sql query: %w", err)
	}

	var updated models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&updated.ID, &updated.SubjectID, &updated.Title, &updated.Content, &updated.Tags, &updated.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrRowNotFound
		}

		log.Err(err).Str("func", "*noteRepository.Update").Msg("error updating note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *noteRepository) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteRow(models.Note{}.TableName(), userID, id).ToSql()
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Msg("error deleting note")
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
