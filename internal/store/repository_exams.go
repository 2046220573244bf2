package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/models"
)

// testRepository is the PostgreSQL-backed implementation of [TestRepository].
// Score is nullable: ungraded tests round-trip as NULL.
type testRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTestRepository(db *DB, logger *logger.Logger) TestRepository {
	logger.Debug().Msg("creating test repository")
	return &testRepository{
		db:     db,
		logger: logger,
	}
}

func (r *testRepository) List(ctx context.Context, userID int64) ([]models.Test, error) {
	log := logger.FromContext(ctx)

	query, args, err := listTests(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*testRepository.List").Msg("error listing tests")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	tests := make([]models.Test, 0)
	for rows.Next() {
		var ts models.Test
		if err = rows.Scan(&ts.ID, &ts.SubjectID, &ts.Title, &ts.TestDate, &ts.Score, &ts.UserID); err != nil {
			log.Err(err).Str("func", "*testRepository.List").Msg("error scanning test row")
			return nil, fmt.Errorf("failed to scan test row: %w", err)
		}
		tests = append(tests, ts)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan test rows: %w", err)
	}

	return tests, nil
}

func (r *testRepository) Create(ctx context.Context, test models.Test) (models.Test, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertTest(test).ToSql()
	if err != nil {
		return models.Test{}, fmt.Errorf("error building sql query: %w", err)
	}

	var created models.Test
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&created.ID, &created.SubjectID, &created.Title, &created.TestDate, &created.Score, &created.UserID); err != nil {
		log.Err(err).Str("func", "*testRepository.Create").Msg("error creating test")
		return models.Test{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *testRepository) Update(ctx context.Context, test models.Test) (models.Test, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateTest(test).ToSql()
	if err != nil {
		return models.Test{}, fmt.Errorf("error building sql query: %w", err)
	}

	var updated models.Test
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&updated.ID, &updated.SubjectID, &updated.Title, &updated.TestDate, &updated.Score, &updated.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Test{}, ErrRowNotFound
		}

		log.Err(err).Str("func", "*testRepository.Update").Msg("error updating test")
		return models.Test{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *testRepository) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteRow(models.Test{}.TableName(), userID, id).ToSql()
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*testRepository.Delete").Msg("error deleting test")
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
