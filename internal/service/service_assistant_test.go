package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/models"
)

type mockCompletionProvider struct {
	completeFn func(ctx context.Context, messages []models.ChatMessage) (string, error)
}

func (m *mockCompletionProvider) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, messages)
	}
	return "", nil
}

func TestAsk_ForwardsTranscript(t *testing.T) {
	var forwarded []models.ChatMessage
	provider := &mockCompletionProvider{
		completeFn: func(ctx context.Context, messages []models.ChatMessage) (string, error) {
			forwarded = messages
			return "pomodoro works well for that", nil
		},
	}
	svc := NewAssistantService(provider, logger.Nop())

	transcript := []models.ChatMessage{
		{Role: "user", Content: "how should I plan my exam week?"},
	}
	reply, err := svc.Ask(context.Background(), transcript)
	require.NoError(t, err)

	assert.Equal(t, "pomodoro works well for that", reply)
	assert.Equal(t, transcript, forwarded)
}

func TestAsk_EmptyTranscript(t *testing.T) {
	svc := NewAssistantService(&mockCompletionProvider{}, logger.Nop())

	_, err := svc.Ask(context.Background(), nil)
	assert.ErrorIs(t, err, ErrValidationNoMessages)
}

func TestAsk_MalformedMessage(t *testing.T) {
	svc := NewAssistantService(&mockCompletionProvider{}, logger.Nop())

	tests := []struct {
		name     string
		messages []models.ChatMessage
	}{
		{"missing role", []models.ChatMessage{{Content: "hello"}}},
		{"missing content", []models.ChatMessage{{Role: "user"}}},
		{"one bad among good", []models.ChatMessage{
			{Role: "user", Content: "hello"},
			{Role: "assistant", Content: ""},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Ask(context.Background(), tt.messages)
			assert.ErrorIs(t, err, ErrValidationNoMessages)
		})
	}
}

func TestAsk_ProviderFailure(t *testing.T) {
	provider := &mockCompletionProvider{
		completeFn: func(ctx context.Context, messages []models.ChatMessage) (string, error) {
			return "", errors.New("upstream 502")
		},
	}
	svc := NewAssistantService(provider, logger.Nop())

	_, err := svc.Ask(context.Background(), []models.ChatMessage{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrAssistantUnavailable)
	assert.Contains(t, err.Error(), "upstream 502")
}
