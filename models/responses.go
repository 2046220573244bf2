// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

package models

// TokenResponse is the success body of POST /login: the signed bearer token
// the client presents on every subsequent request.
type TokenResponse struct {
	Token string `json:"token"`
}

// SuccessResponse is the minimal acknowledgement body used by endpoints that
// have nothing else to return (register, reset-password, deletes).
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the uniform failure envelope. Details carries the
// provider-supplied error text for AI relay failures and is omitted
// everywhere else.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AskResponse is the success body of POST /ai-assistant.
type AskResponse struct {
	Response string `json:"response"`
}
