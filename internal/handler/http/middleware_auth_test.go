// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studysesh/study-sesh/internal/service"
	"github.com/studysesh/study-sesh/models"
)

func TestAuthMiddleware_NoHeader(t *testing.T) {
	storeTouched := false
	subjects := &mockSubjectService{
		listFn: func(ctx context.Context, userID int64) ([]models.Subject, error) {
			storeTouched = true
			return nil, nil
		},
	}
	h := newTestHandler(&service.Services{SubjectService: subjects})

	rec := doRequest(t, h, http.MethodGet, "/subjects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "No token provided", errorMessage(t, rec))
	assert.False(t, storeTouched, "rejected request must not reach the service layer")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rec := doRequest(t, h, http.MethodGet, "/subjects", "", map[string]string{"Authorization": "Bearer"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "No token provided", errorMessage(t, rec))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := doRequest(t, h, http.MethodGet, "/subjects", "", map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, rec))
}

func TestAuthMiddleware_PassesUserIDToHandler(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid-token", tokenString)
			return models.Token{UserID: 42, Username: "maria"}, nil
		},
	}
	var sawUserID int64
	subjects := &mockSubjectService{
		listFn: func(ctx context.Context, userID int64) ([]models.Subject, error) {
			sawUserID = userID
			return []models.Subject{}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth, SubjectService: subjects})

	rec := doRequest(t, h, http.MethodGet, "/subjects", "", map[string]string{"Authorization": "Bearer valid-token"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), sawUserID)
}
