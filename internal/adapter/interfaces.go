// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

// Package adapter provides transport-layer abstractions for talking to
// external systems: the OpenRouter completion API on the server side, and the
// Study Sesh REST API on the client side.
//
// The primary client abstraction is [ServerAdapter], which decouples the
// client services from the wire protocol. Error values defined in errors.go
// are mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/studysesh/study-sesh/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Study Sesh
// server. Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. Registration does not authenticate:
	// the caller must Login afterwards to obtain a token.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user. On success the returned bearer token is
	// stored via SetToken.
	Login(ctx context.Context, user models.User) error

	// ResetPassword replaces the password of an existing account. Returns
	// [ErrNotFound] (wrapped) when the username is unknown.
	ResetPassword(ctx context.Context, username, newPassword string) error

	ListSubjects(ctx context.Context) ([]models.Subject, error)
	CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error)
	UpdateSubject(ctx context.Context, subject models.Subject) (models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error

	ListAssignments(ctx context.Context) ([]models.Assignment, error)
	CreateAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	UpdateAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	DeleteAssignment(ctx context.Context, id int64) error

	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, id int64) error

	ListTests(ctx context.Context) ([]models.Test, error)
	CreateTest(ctx context.Context, test models.Test) (models.Test, error)
	UpdateTest(ctx context.Context, test models.Test) (models.Test, error)
	DeleteTest(ctx context.Context, id int64) error

	// Ask relays a chat transcript to the server's AI assistant endpoint and
	// returns the assistant's reply.
	Ask(ctx context.Context, messages []models.ChatMessage) (string, error)
}
