package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studysesh/study-sesh/internal/service"
	"github.com/studysesh/study-sesh/models"
)

func TestAskAssistant_Success(t *testing.T) {
	var sawMessages []models.ChatMessage
	assistant := &mockAssistantService{
		askFn: func(ctx context.Context, messages []models.ChatMessage) (string, error) {
			sawMessages = messages
			return "start with the oldest deadline", nil
		},
	}
	h := newTestHandler(&service.Services{AssistantService: assistant})

	rec := doRequest(t, h, http.MethodPost, "/ai-assistant",
		`{"messages":[{"role":"user","content":"what should I do first?"}]}`, authHeader)
	require.Equal(t, http.StatusOK, rec.Code)

	var response models.AskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "start with the oldest deadline", response.Response)
	require.Len(t, sawMessages, 1)
	assert.Equal(t, "user", sawMessages[0].Role)
}

func TestAskAssistant_EmptyMessages(t *testing.T) {
	assistant := &mockAssistantService{
		askFn: func(ctx context.Context, messages []models.ChatMessage) (string, error) {
			return "", service.ErrValidationNoMessages
		},
	}
	h := newTestHandler(&service.Services{AssistantService: assistant})

	rec := doRequest(t, h, http.MethodPost, "/ai-assistant", `{"messages":[]}`, authHeader)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Messages array required", errorMessage(t, rec))
}

func TestAskAssistant_ProviderFailure(t *testing.T) {
	assistant := &mockAssistantService{
		askFn: func(ctx context.Context, messages []models.ChatMessage) (string, error) {
			return "", fmt.Errorf("%w: http 500: upstream exploded", service.ErrAssistantUnavailable)
		},
	}
	h := newTestHandler(&service.Services{AssistantService: assistant})

	rec := doRequest(t, h, http.MethodPost, "/ai-assistant",
		`{"messages":[{"role":"user","content":"hi"}]}`, authHeader)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "AI error", envelope.Error)
	assert.Contains(t, envelope.Details, "upstream exploded")
}

func TestAskAssistant_RequiresAuth(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rec := doRequest(t, h, http.MethodPost, "/ai-assistant",
		`{"messages":[{"role":"user","content":"hi"}]}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
