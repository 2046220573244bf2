package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/studysesh/study-sesh/internal/config"
	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/utils"
	"github.com/studysesh/study-sesh/models"
)

// OpenRouterProvider relays chat transcripts to the OpenRouter
// chat-completions API. It satisfies the completion-provider port of the
// assistant service.
type OpenRouterProvider struct {
	client    *utils.HTTPClient
	model     string
	maxTokens int
	logger    *logger.Logger
}

// NewOpenRouterProvider configures a provider from cfg. The API key is
// attached as a bearer token on every request; the model and token cap are
// fixed per deployment.
func NewOpenRouterProvider(cfg config.Assistant, logger *logger.Logger) *OpenRouterProvider {
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.APIKey)

	return &OpenRouterProvider{
		client:    client,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}
}

// Complete sends the transcript to POST /chat/completions and returns the
// first choice's message content.
//
// Returns ErrProvider (wrapped, with the upstream message when one is given)
// if the transport fails, the provider answers non-2xx, or the response
// carries no choices.
func (p *OpenRouterProvider) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	log := logger.FromContext(ctx)

	request := models.CompletionRequest{
		Model:     p.model,
		Messages:  messages,
		MaxTokens: p.maxTokens,
	}

	var completion models.CompletionResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&completion).
		Post("/chat/completions")
	if err != nil {
		log.Err(err).Msg("completion request failed")
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		detail := strings.TrimSpace(string(resp.Body()))
		var failure models.CompletionResponse
		if jsonErr := json.Unmarshal(resp.Body(), &failure); jsonErr == nil && failure.Error != nil && failure.Error.Message != "" {
			detail = failure.Error.Message
		}
		log.Error().Int("status", resp.StatusCode()).Str("detail", detail).Msg("completion request rejected")
		return "", fmt.Errorf("%w: http %d: %s", ErrProvider, resp.StatusCode(), detail)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: response carried no choices", ErrProvider)
	}

	return completion.Choices[0].Message.Content, nil
}
