package service

import (
	"context"
	"fmt"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/store"
	"github.com/studysesh/study-sesh/models"
)

// testService validates test payloads and delegates persistence to the
// TestRepository. Score stays nil until the test is graded.
type testService struct {
	repository store.TestRepository
	logger     *logger.Logger
}

func NewTestService(repository store.TestRepository, logger *logger.Logger) TestService {
	return &testService{
		repository: repository,
		logger:     logger,
	}
}

func (s *testService) List(ctx context.Context, userID int64) ([]models.Test, error) {
	tests, err := s.repository.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("test listing ended with error: %w", err)
	}

	return tests, nil
}

func (s *testService) Create(ctx context.Context, test models.Test) (models.Test, error) {
	log := logger.FromContext(ctx)

	if test.Title == "" {
		log.Error().Msg("test created without title")
		return models.Test{}, ErrValidationNoTestTitle
	}

	created, err := s.repository.Create(ctx, test)
	if err != nil {
		return models.Test{}, fmt.Errorf("test creation ended with error: %w", err)
	}

	return created, nil
}

func (s *testService) Update(ctx context.Context, test models.Test) (models.Test, error) {
	log := logger.FromContext(ctx)

	if test.Title == "" {
		log.Error().Int64("id", test.ID).Msg("test updated without title")
		return models.Test{}, ErrValidationNoTestTitle
	}

	updated, err := s.repository.Update(ctx, test)
	if err != nil {
		return models.Test{}, fmt.Errorf("test update ended with error: %w", err)
	}

	return updated, nil
}

func (s *testService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repository.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("test deletion ended with error: %w", err)
	}

	return nil
}
