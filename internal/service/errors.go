package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationNoSubjectName     = errors.New("subject name is required")
	ErrValidationNoAssignmentTitle = errors.New("assignment title is required")
	ErrValidationNoNoteTitle       = errors.New("note title is required")
	ErrValidationNoTestTitle       = errors.New("test title is required")

	ErrValidationNoMessages = errors.New("messages are required")
	ErrAssistantUnavailable = errors.New("assistant provider request failed")
)
