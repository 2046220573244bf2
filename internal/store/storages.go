package store

import (
	"github.com/studysesh/study-sesh/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository
	SubjectRepository
	AssignmentRepository
	NoteRepository
	TestRepository
}

// NewStorages wires all repositories to the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating storages")

	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		SubjectRepository:    NewSubjectRepository(db, logger),
		AssignmentRepository: NewAssignmentRepository(db, logger),
		NoteRepository:       NewNoteRepository(db, logger),
		TestRepository:       NewTestRepository(db, logger),
	}
}
