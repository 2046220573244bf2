package service

import (
	"context"

	"github.com/studysesh/study-sesh/models"
)

// ClientAuthService defines the client-side contract for account management.
// Implementations delegate to the remote server adapter; the bearer token
// lives inside the adapter, so the rest of the client never touches it.
type ClientAuthService interface {
	// Register creates a new account on the server. Registration does not
	// log the user in.
	Register(ctx context.Context, username, password string) error

	// Login authenticates against the server and leaves the session token in
	// the adapter for subsequent calls.
	Login(ctx context.Context, username, password string) error

	// ResetPassword replaces the password of an existing account.
	ResetPassword(ctx context.Context, username, newPassword string) error

	// LoggedIn reports whether a session token is currently held.
	LoggedIn() bool

	// Logout drops the session token.
	Logout()
}

// The four client resource services mirror the server API. Every mutation
// re-fetches and returns the full list, so the TUI always renders
// server-assigned state and never guesses at ids.

type ClientSubjectService interface {
	List(ctx context.Context) ([]models.Subject, error)
	Create(ctx context.Context, subject models.Subject) ([]models.Subject, error)
	Update(ctx context.Context, subject models.Subject) ([]models.Subject, error)
	Delete(ctx context.Context, id int64) ([]models.Subject, error)
}

// ClientAssignmentService additionally exposes the local completion flags:
// checkmarks are stored on this machine only and survive logout, but are
// invisible to the server.
type ClientAssignmentService interface {
	List(ctx context.Context) ([]models.Assignment, error)
	Create(ctx context.Context, assignment models.Assignment) ([]models.Assignment, error)
	Update(ctx context.Context, assignment models.Assignment) ([]models.Assignment, error)
	Delete(ctx context.Context, id int64) ([]models.Assignment, error)

	DoneSet(ctx context.Context) (map[int64]bool, error)
	ToggleDone(ctx context.Context, id int64) error
}

type ClientNoteService interface {
	List(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, note models.Note) ([]models.Note, error)
	Update(ctx context.Context, note models.Note) ([]models.Note, error)
	Delete(ctx context.Context, id int64) ([]models.Note, error)
}

type ClientTestService interface {
	List(ctx context.Context) ([]models.Test, error)
	Create(ctx context.Context, test models.Test) ([]models.Test, error)
	Update(ctx context.Context, test models.Test) ([]models.Test, error)
	Delete(ctx context.Context, id int64) ([]models.Test, error)
}

// ClientAssistantService accumulates the chat transcript across turns and
// resends the whole conversation to the server on every question.
type ClientAssistantService interface {
	// Ask appends the question to the transcript, relays the full transcript,
	// appends the reply, and returns it.
	Ask(ctx context.Context, question string) (string, error)

	// Transcript returns the conversation so far, oldest turn first.
	Transcript() []models.ChatMessage

	// LastAnswer returns the most recent assistant reply, or "" when the
	// conversation has none.
	LastAnswer() string

	// Reset clears the transcript.
	Reset()
}
