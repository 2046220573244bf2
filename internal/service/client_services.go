package service

import (
	"github.com/studysesh/study-sesh/internal/adapter"
	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/store"
)

type ClientServices struct {
	AuthService       ClientAuthService
	SubjectService    ClientSubjectService
	AssignmentService ClientAssignmentService
	NoteService       ClientNoteService
	TestService       ClientTestService
	AssistantService  ClientAssistantService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, doneStore *store.DoneStore, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:       NewClientAuthService(serverAdapter, logger),
		SubjectService:    NewClientSubjectService(serverAdapter, logger),
		AssignmentService: NewClientAssignmentService(serverAdapter, doneStore, logger),
		NoteService:       NewClientNoteService(serverAdapter, logger),
		TestService:       NewClientTestService(serverAdapter, logger),
		AssistantService:  NewClientAssistantService(serverAdapter, logger),
	}
}
