// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

package models

// ChatMessage is one turn of an AI assistant conversation. The client resends
// the full transcript on every turn; the server keeps no conversation state.
type ChatMessage struct {
	// Role is "user", "assistant", or "system".
	Role string `json:"role"`

	// Content is the plain-text body of the turn.
	Content string `json:"content"`
}

// AskRequest is the body of POST /ai-assistant.
type AskRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// CompletionRequest is the payload forwarded verbatim to the external chat
// completion provider, plus the fixed model identifier and token cap.
type CompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []ChatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

// CompletionResponse is the subset of the provider's response the relay
// reads: the first choice's message content on success, or the error detail
// on failure.
type CompletionResponse struct {
	Choices []CompletionChoice `json:"choices"`

	Error *CompletionError `json:"error,omitempty"`
}

// CompletionChoice is one candidate reply; the relay only ever reads the
// first.
type CompletionChoice struct {
	Message ChatMessage `json:"message"`
}

// CompletionError is the provider-supplied error payload, forwarded to the
// caller without retry or transformation.
type CompletionError struct {
	Message string `json:"message"`
	Code    any    `json:"code,omitempty"`
}
