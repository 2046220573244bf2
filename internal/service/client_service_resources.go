package service

import (
	"context"
	"fmt"

	"github.com/studysesh/study-sesh/internal/adapter"
	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/store"
	"github.com/studysesh/study-sesh/models"
)

// clientSubjectService proxies subject CRUD to the server, re-fetching the
// list after every mutation.
type clientSubjectService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientSubjectService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSubjectService {
	return &clientSubjectService{adapter: serverAdapter, logger: logger}
}

func (s *clientSubjectService) List(ctx context.Context) ([]models.Subject, error) {
	return s.adapter.ListSubjects(ctx)
}

func (s *clientSubjectService) Create(ctx context.Context, subject models.Subject) ([]models.Subject, error) {
	if _, err := s.adapter.CreateSubject(ctx, subject); err != nil {
		return nil, fmt.Errorf("subject creation failed: %w", err)
	}
	return s.adapter.ListSubjects(ctx)
}

func (s *clientSubjectService) Update(ctx context.Context, subject models.Subject) ([]models.Subject, error) {
	if _, err := s.adapter.UpdateSubject(ctx, subject); err != nil {
		return nil, fmt.Errorf("subject update failed: %w", err)
	}
	return s.adapter.ListSubjects(ctx)
}

func (s *clientSubjectService) Delete(ctx context.Context, id int64) ([]models.Subject, error) {
	if err := s.adapter.DeleteSubject(ctx, id); err != nil {
		return nil, fmt.Errorf("subject deletion failed: %w", err)
	}
	return s.adapter.ListSubjects(ctx)
}

// clientAssignmentService proxies assignment CRUD and keeps the local
// completion flags in the SQLite done store. Deleting an assignment clears
// its flag so a later row reusing the id does not appear pre-completed.
type clientAssignmentService struct {
	adapter   adapter.ServerAdapter
	doneStore *store.DoneStore
	logger    *logger.Logger
}

func NewClientAssignmentService(serverAdapter adapter.ServerAdapter, doneStore *store.DoneStore, logger *logger.Logger) ClientAssignmentService {
	return &clientAssignmentService{adapter: serverAdapter, doneStore: doneStore, logger: logger}
}

func (s *clientAssignmentService) List(ctx context.Context) ([]models.Assignment, error) {
	return s.adapter.ListAssignments(ctx)
}

func (s *clientAssignmentService) Create(ctx context.Context, assignment models.Assignment) ([]models.Assignment, error) {
	if _, err := s.adapter.CreateAssignment(ctx, assignment); err != nil {
		return nil, fmt.Errorf("assignment creation failed: %w", err)
	}
	return s.adapter.ListAssignments(ctx)
}

func (s *clientAssignmentService) Update(ctx context.Context, assignment models.Assignment) ([]models.Assignment, error) {
	if _, err := s.adapter.UpdateAssignment(ctx, assignment); err != nil {
		return nil, fmt.Errorf("assignment update failed: %w", err)
	}
	return s.adapter.ListAssignments(ctx)
}

func (s *clientAssignmentService) Delete(ctx context.Context, id int64) ([]models.Assignment, error) {
	if err := s.adapter.DeleteAssignment(ctx, id); err != nil {
		return nil, fmt.Errorf("assignment deletion failed: %w", err)
	}
	if err := s.doneStore.SetDone(ctx, id, false); err != nil {
		s.logger.Err(err).Int64("id", id).Msg("clearing done flag failed")
	}
	return s.adapter.ListAssignments(ctx)
}

func (s *clientAssignmentService) DoneSet(ctx context.Context) (map[int64]bool, error) {
	return s.doneStore.DoneSet(ctx)
}

func (s *clientAssignmentService) ToggleDone(ctx context.Context, id int64) error {
	done, err := s.doneStore.IsDone(ctx, id)
	if err != nil {
		return fmt.Errorf("reading done flag failed: %w", err)
	}

	return s.doneStore.SetDone(ctx, id, !done)
}

// clientNoteService proxies note CRUD to the server.
type clientNoteService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientNoteService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{adapter: serverAdapter, logger: logger}
}

func (s *clientNoteService) List(ctx context.Context) ([]models.Note, error) {
	return s.adapter.ListNotes(ctx)
}

func (s *clientNoteService) Create(ctx context.Context, note models.Note) ([]models.Note, error) {
	if _, err := s.adapter.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("note creation failed: %w", err)
	}
	return s.adapter.ListNotes(ctx)
}

func (s *clientNoteService) Update(ctx context.Context, note models.Note) ([]models.Note, error) {
	if _, err := s.adapter.UpdateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("note update failed: %w", err)
	}
	return s.adapter.ListNotes(ctx)
}

func (s *clientNoteService) Delete(ctx context.Context, id int64) ([]models.Note, error) {
	if err := s.adapter.DeleteNote(ctx, id); err != nil {
		return nil, fmt.Errorf("note deletion failed: %w", err)
	}
	return s.adapter.ListNotes(ctx)
}

// clientTestService proxies test CRUD to the server.
type clientTestService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientTestService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientTestService {
	return &clientTestService{adapter: serverAdapter, logger: logger}
}

func (s *clientTestService) List(ctx context.Context) ([]models.Test, error) {
	return s.adapter.ListTests(ctx)
}

func (s *clientTestService) Create(ctx context.Context, test models.Test) ([]models.Test, error) {
	if _, err := s.adapter.CreateTest(ctx, test); err != nil {
		return nil, fmt.Errorf("test creation failed: %w", err)
	}
	return s.adapter.ListTests(ctx)
}

func (s *clientTestService) Update(ctx context.Context, test models.Test) ([]models.Test, error) {
	if _, err := s.adapter.UpdateTest(ctx, test); err != nil {
		return nil, fmt.Errorf("test update failed: %w", err)
	}
	return s.adapter.ListTests(ctx)
}

func (s *clientTestService) Delete(ctx context.Context, id int64) ([]models.Test, error) {
	if err := s.adapter.DeleteTest(ctx, id); err != nil {
		return nil, fmt.Errorf("test deletion failed: %w", err)
	}
	return s.adapter.ListTests(ctx)
}
