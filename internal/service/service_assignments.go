package service

import (
	"context"
	"fmt"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/store"
	"github.com/studysesh/study-sesh/models"
)

// assignmentService validates assignment payloads and delegates persistence
// to the AssignmentRepository. An assignment needs a non-empty title; a
// missing status defaults to "pending" on create.
type assignmentService struct {
	repository store.AssignmentRepository
	logger     *logger.Logger
}

func NewAssignmentService(repository store.AssignmentRepository, logger *logger.Logger) AssignmentService {
	return &assignmentService{
		repository: repository,
		logger:     logger,
	}
}

func (s *assignmentService) List(ctx context.Context, userID int64) ([]models.Assignment, error) {
	assignments, err := s.repository.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("assignment listing ended with error: %w", err)
	}

	return assignments, nil
}

func (s *assignmentService) Create(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	if assignment.Title == "" {
		log.Error().Msg("assignment created without title")
		return models.Assignment{}, ErrValidationNoAssignmentTitle
	}
	if assignment.Status == "" {
		assignment.Status = models.AssignmentStatusPending
	}

	created, err := s.repository.Create(ctx, assignment)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("assignment creation ended with error: %w", err)
	}

	return created, nil
}

func (s *assignmentService) Update(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	if assignment.Title == "" {
		log.Error().Int64("id", assignment.ID).Msg("assignment updated without title")
		return models.Assignment{}, ErrValidationNoAssignmentTitle
	}
	if assignment.Status == "" {
		assignment.Status = models.AssignmentStatusPending
	}

	updated, err := s.repository.Update(ctx, assignment)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("assignment update ended with error: %w", err)
	}

	return updated, nil
}

func (s *assignmentService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repository.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("assignment deletion ended with error: %w", err)
	}

	return nil
}
