package store

import (
	"context"

	"github.com/studysesh/study-sesh/models"
)

// UserRepository persists user accounts. Usernames are unique; credential
// hashes are opaque to this layer.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

// The four resource repositories share one contract: every read is filtered
// by owner, every write carries the owner, and update/delete match on
// (id AND owner) so cross-user access is impossible at the data layer.
// Each method issues exactly one statement.

type SubjectRepository interface {
	List(ctx context.Context, userID int64) ([]models.Subject, error)
	Create(ctx context.Context, subject models.Subject) (models.Subject, error)
	Update(ctx context.Context, subject models.Subject) (models.Subject, error)
	Delete(ctx context.Context, userID, id int64) error
}

type AssignmentRepository interface {
	List(ctx context.Context, userID int64) ([]models.Assignment, error)
	Create(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	Update(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	Delete(ctx context.Context, userID, id int64) error
}

type NoteRepository interface {
	List(ctx context.Context, userID int64) ([]models.Note, error)
	Create(ctx context.Context, note models.Note) (models.Note, error)
	Update(ctx context.Context, note models.Note) (models.Note, error)
	Delete(ctx context.Context, userID, id int64) error
}

type TestRepository interface {
	List(ctx context.Context, userID int64) ([]models.Test, error)
	Create(ctx context.Context, test models.Test) (models.Test, error)
	Update(ctx context.Context, test models.Test) (models.Test, error)
	Delete(ctx context.Context, userID, id int64) error
}
