package service

import (
	"context"
	"fmt"

	"github.com/studysesh/study-sesh/internal/adapter"
	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidDataProvided
	}

	if err := a.adapter.Register(ctx, models.User{Username: username, Password: password}); err != nil {
		a.logger.Err(err).Str("username", username).Msg("registration failed")
		return fmt.Errorf("registration failed: %w", err)
	}

	return nil
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidDataProvided
	}

	if err := a.adapter.Login(ctx, models.User{Username: username, Password: password}); err != nil {
		a.logger.Err(err).Str("username", username).Msg("login failed")
		return fmt.Errorf("login failed: %w", err)
	}

	return nil
}

func (a *clientAuthService) ResetPassword(ctx context.Context, username, newPassword string) error {
	if username == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	if err := a.adapter.ResetPassword(ctx, username, newPassword); err != nil {
		a.logger.Err(err).Str("username", username).Msg("password reset failed")
		return fmt.Errorf("password reset failed: %w", err)
	}

	return nil
}

func (a *clientAuthService) LoggedIn() bool {
	return a.adapter.Token() != ""
}

func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
}
