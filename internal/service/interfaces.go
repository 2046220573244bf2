package service

import (
	"context"

	"github.com/studysesh/study-sesh/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	ResetPassword(ctx context.Context, username, newPassword string) error
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// The four resource services share one shape: list everything the caller
// owns, create with server-assigned id, update or delete an owned row.
// The owner always comes from the verified token, never the payload.

type SubjectService interface {
	List(ctx context.Context, userID int64) ([]models.Subject, error)
	Create(ctx context.Context, subject models.Subject) (models.Subject, error)
	Update(ctx context.Context, subject models.Subject) (models.Subject, error)
	Delete(ctx context.Context, userID, id int64) error
}

type AssignmentService interface {
	List(ctx context.Context, userID int64) ([]models.Assignment, error)
	Create(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	Update(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	Delete(ctx context.Context, userID, id int64) error
}

type NoteService interface {
	List(ctx context.Context, userID int64) ([]models.Note, error)
	Create(ctx context.Context, note models.Note) (models.Note, error)
	Update(ctx context.Context, note models.Note) (models.Note, error)
	Delete(ctx context.Context, userID, id int64) error
}

type TestService interface {
	List(ctx context.Context, userID int64) ([]models.Test, error)
	Create(ctx context.Context, test models.Test) (models.Test, error)
	Update(ctx context.Context, test models.Test) (models.Test, error)
	Delete(ctx context.Context, userID, id int64) error
}

// AssistantService relays a chat transcript to the configured completion
// provider and returns the assistant's reply.
type AssistantService interface {
	Ask(ctx context.Context, messages []models.ChatMessage) (string, error)
}

// CompletionProvider is the outbound port the assistant service talks to.
// The adapter package supplies the OpenRouter-backed implementation.
type CompletionProvider interface {
	Complete(ctx context.Context, messages []models.ChatMessage) (string, error)
}
