package http

import (
	"context"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/service"
	"github.com/studysesh/study-sesh/models"
)

// ─────────────────────────────────────────────
// Function-field mocks for the service layer
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn  func(ctx context.Context, user models.User) (models.User, error)
	loginFn         func(ctx context.Context, user models.User) (models.User, error)
	resetPasswordFn func(ctx context.Context, username, newPassword string) error
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) ResetPassword(ctx context.Context, username, newPassword string) error {
	if m.resetPasswordFn != nil {
		return m.resetPasswordFn(ctx, username, newPassword)
	}
	return nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "test-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 7, Username: "maria"}, nil
}

type mockSubjectService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Subject, error)
	createFn func(ctx context.Context, subject models.Subject) (models.Subject, error)
	updateFn func(ctx context.Context, subject models.Subject) (models.Subject, error)
	deleteFn func(ctx context.Context, userID, id int64) error
}

func (m *mockSubjectService) List(ctx context.Context, userID int64) ([]models.Subject, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return []models.Subject{}, nil
}

func (m *mockSubjectService) Create(ctx context.Context, subject models.Subject) (models.Subject, error) {
	if m.createFn != nil {
		return m.createFn(ctx, subject)
	}
	return subject, nil
}

func (m *mockSubjectService) Update(ctx context.Context, subject models.Subject) (models.Subject, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, subject)
	}
	return subject, nil
}

func (m *mockSubjectService) Delete(ctx context.Context, userID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

type mockAssignmentService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Assignment, error)
	createFn func(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	updateFn func(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	deleteFn func(ctx context.Context, userID, id int64) error
}

func (m *mockAssignmentService) List(ctx context.Context, userID int64) ([]models.Assignment, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return []models.Assignment{}, nil
}

func (m *mockAssignmentService) Create(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, assignment)
	}
	return assignment, nil
}

func (m *mockAssignmentService) Update(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, assignment)
	}
	return assignment, nil
}

func (m *mockAssignmentService) Delete(ctx context.Context, userID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

type mockNoteService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Note, error)
	createFn func(ctx context.Context, note models.Note) (models.Note, error)
	updateFn func(ctx context.Context, note models.Note) (models.Note, error)
	deleteFn func(ctx context.Context, userID, id int64) error
}

func (m *mockNoteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return []models.Note{}, nil
}

func (m *mockNoteService) Create(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteService) Update(ctx context.Context, note models.Note) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteService) Delete(ctx context.Context, userID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

type mockTestService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Test, error)
	createFn func(ctx context.Context, test models.Test) (models.Test, error)
	updateFn func(ctx context.Context, test models.Test) (models.Test, error)
	deleteFn func(ctx context.Context, userID, id int64) error
}

func (m *mockTestService) List(ctx context.Context, userID int64) ([]models.Test, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return []models.Test{}, nil
}

func (m *mockTestService) Create(ctx context.Context, test models.Test) (models.Test, error) {
	if m.createFn != nil {
		return m.createFn(ctx, test)
	}
	return test, nil
}

func (m *mockTestService) Update(ctx context.Context, test models.Test) (models.Test, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, test)
	}
	return test, nil
}

func (m *mockTestService) Delete(ctx context.Context, userID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

type mockAssistantService struct {
	askFn func(ctx context.Context, messages []models.ChatMessage) (string, error)
}

func (m *mockAssistantService) Ask(ctx context.Context, messages []models.ChatMessage) (string, error) {
	if m.askFn != nil {
		return m.askFn(ctx, messages)
	}
	return "", nil
}

// newTestHandler wires a Handler with all-default mocks; tests override the
// fields they care about.
func newTestHandler(services *service.Services) *Handler {
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.SubjectService == nil {
		services.SubjectService = &mockSubjectService{}
	}
	if services.AssignmentService == nil {
		services.AssignmentService = &mockAssignmentService{}
	}
	if services.NoteService == nil {
		services.NoteService = &mockNoteService{}
	}
	if services.TestService == nil {
		services.TestService = &mockTestService{}
	}
	if services.AssistantService == nil {
		services.AssistantService = &mockAssistantService{}
	}

	return NewHandler(services, logger.Nop())
}
