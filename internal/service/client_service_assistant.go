package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/studysesh/study-sesh/internal/adapter"
	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/models"
)

// clientAssistantService holds the running conversation in memory. The
// server keeps no chat state, so the whole transcript is resent every turn.
type clientAssistantService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu         sync.Mutex
	transcript []models.ChatMessage
}

func NewClientAssistantService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAssistantService {
	return &clientAssistantService{adapter: serverAdapter, logger: logger}
}

func (s *clientAssistantService) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", ErrValidationNoMessages
	}

	s.mu.Lock()
	attempt := append(append([]models.ChatMessage{}, s.transcript...),
		models.ChatMessage{Role: "user", Content: question})
	s.mu.Unlock()

	reply, err := s.adapter.Ask(ctx, attempt)
	if err != nil {
		s.logger.Err(err).Msg("assistant request failed")
		return "", fmt.Errorf("assistant request failed: %w", err)
	}

	// A failed turn leaves the transcript untouched so the user can retry.
	s.mu.Lock()
	s.transcript = append(attempt, models.ChatMessage{Role: "assistant", Content: reply})
	s.mu.Unlock()

	return reply, nil
}

func (s *clientAssistantService) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage{}, s.transcript...)
}

func (s *clientAssistantService) LastAnswer() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.transcript) - 1; i >= 0; i-- {
		if s.transcript[i].Role == "assistant" {
			return s.transcript[i].Content
		}
	}
	return ""
}

func (s *clientAssistantService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
}
