package service

import (
	"context"
	"fmt"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/store"
	"github.com/studysesh/study-sesh/models"
)

// noteService validates note payloads and delegates persistence to the
// NoteRepository. Content is treated as an opaque serialized document.
type noteService struct {
	repository store.NoteRepository
	logger     *logger.Logger
}

func NewNoteService(repository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		repository: repository,
		logger:     logger,
	}
}

func (s *noteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	notes, err := s.repository.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("note listing ended with error: %w", err)
	}

	return notes, nil
}

func (s *noteService) Create(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if note.Title == "" {
		log.Error().Msg("note created without title")
		return models.Note{}, ErrValidationNoNoteTitle
	}

	created, err := s.repository.Create(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

func (s *noteService) Update(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if note.Title == "" {
		log.Error().Int64("id", note.ID).Msg("note updated without title")
		return models.Note{}, ErrValidationNoNoteTitle
	}

	updated, err := s.repository.Update(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updated, nil
}

func (s *noteService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repository.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}
