package service

import (
	"github.com/studysesh/study-sesh/internal/config"
	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/store"
)

type Services struct {
	AuthService       AuthService
	SubjectService    SubjectService
	AssignmentService AssignmentService
	NoteService       NoteService
	TestService       TestService
	AssistantService  AssistantService
}

func NewServices(storages *store.Storages, provider CompletionProvider, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.Auth, logger),
		SubjectService:    NewSubjectService(storages.SubjectRepository, logger),
		AssignmentService: NewAssignmentService(storages.AssignmentRepository, logger),
		NoteService:       NewNoteService(storages.NoteRepository, logger),
		TestService:       NewTestService(storages.TestRepository, logger),
		AssistantService:  NewAssistantService(provider, logger),
	}
}
