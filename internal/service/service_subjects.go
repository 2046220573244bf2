package service

import (
	"context"
	"fmt"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/store"
	"github.com/studysesh/study-sesh/models"
)

// subjectService validates subject payloads and delegates persistence to the
// SubjectRepository. A subject needs a non-empty name; the description is
// optional.
type subjectService struct {
	repository store.SubjectRepository
	logger     *logger.Logger
}

func NewSubjectService(repository store.SubjectRepository, logger *logger.Logger) SubjectService {
	return &subjectService{
		repository: repository,
		logger:     logger,
	}
}

func (s *subjectService) List(ctx context.Context, userID int64) ([]models.Subject, error) {
	subjects, err := s.repository.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("subject listing ended with error: %w", err)
	}

	return subjects, nil
}

func (s *subjectService) Create(ctx context.Context, subject models.Subject) (models.Subject, error) {
	log := logger.FromContext(ctx)

	if subject.Name == "" {
		log.Error().Msg("subject created without name")
		return models.Subject{}, ErrValidationNoSubjectName
	}

	created, err := s.repository.Create(ctx, subject)
	if err != nil {
		return models.Subject{}, fmt.Errorf("subject creation ended with error: %w", err)
	}

	return created, nil
}

func (s *subjectService) Update(ctx context.Context, subject models.Subject) (models.Subject, error) {
	log := logger.FromContext(ctx)

	if subject.Name == "" {
		log.Error().Int64("id", subject.ID).Msg("subject updated without name")
		return models.Subject{}, ErrValidationNoSubjectName
	}

	updated, err := s.repository.Update(ctx, subject)
	if err != nil {
		return models.Subject{}, fmt.Errorf("subject update ended with error: %w", err)
	}

	return updated, nil
}

func (s *subjectService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repository.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("subject deletion ended with error: %w", err)
	}

	return nil
}
