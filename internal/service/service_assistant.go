package service

import (
	"context"
	"fmt"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/models"
)

// assistantService relays chat transcripts to a CompletionProvider. The
// transcript is forwarded as-is; the server adds no system prompt and keeps
// no conversation state between calls.
type assistantService struct {
	provider CompletionProvider
	logger   *logger.Logger
}

func NewAssistantService(provider CompletionProvider, logger *logger.Logger) AssistantService {
	return &assistantService{
		provider: provider,
		logger:   logger,
	}
}

// Ask validates the transcript and forwards it to the provider.
//
// Returns:
//   - ErrValidationNoMessages if the transcript is empty or any message is
//     missing a role or content.
//   - ErrAssistantUnavailable (wrapping the provider error) if the relay
//     fails for any reason.
func (s *assistantService) Ask(ctx context.Context, messages []models.ChatMessage) (string, error) {
	log := logger.FromContext(ctx)

	if len(messages) == 0 {
		log.Error().Msg("assistant called with empty transcript")
		return "", ErrValidationNoMessages
	}
	for _, m := range messages {
		if m.Role == "" || m.Content == "" {
			log.Error().Str("role", m.Role).Msg("assistant called with malformed message")
			return "", ErrValidationNoMessages
		}
	}

	reply, err := s.provider.Complete(ctx, messages)
	if err != nil {
		log.Err(err).Msg("completion provider call failed")
		return "", fmt.Errorf("%w: %w", ErrAssistantUnavailable, err)
	}

	return reply, nil
}
