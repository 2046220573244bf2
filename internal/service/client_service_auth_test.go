// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/studysesh/study-sesh/internal/adapter"
	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/mock"
	"github.com/studysesh/study-sesh/models"
)

func TestClientAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	auth := NewClientAuthService(serverAdapter, logger.Nop())

	serverAdapter.EXPECT().
		Register(gomock.Any(), models.User{Username: "maria", Password: "secret"}).
		Return(nil)

	err := auth.Register(context.Background(), "maria", "secret")
	require.NoError(t, err)
}

func TestClientAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The adapter must never be called when validation fails locally.
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	auth := NewClientAuthService(serverAdapter, logger.Nop())

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "no username", username: "", password: "secret"},
		{name: "no password", username: "maria", password: ""},
		{name: "nothing", username: "", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.Register(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestClientAuthService_Register_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	auth := NewClientAuthService(serverAdapter, logger.Nop())

	serverAdapter.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(adapter.ErrBadRequest)

	err := auth.Register(context.Background(), "maria", "secret")
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

func TestClientAuthService_LoginLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	auth := NewClientAuthService(serverAdapter, logger.Nop())

	serverAdapter.EXPECT().
		Login(gomock.Any(), models.User{Username: "maria", Password: "secret"}).
		Return(nil)
	serverAdapter.EXPECT().Token().Return("jwt-token")

	err := auth.Login(context.Background(), "maria", "secret")
	require.NoError(t, err)
	assert.True(t, auth.LoggedIn())

	serverAdapter.EXPECT().SetToken("")
	serverAdapter.EXPECT().Token().Return("")

	auth.Logout()
	assert.False(t, auth.LoggedIn())
}

func TestClientAuthService_Login_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	auth := NewClientAuthService(serverAdapter, logger.Nop())

	serverAdapter.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(adapter.ErrUnauthorized)

	err := auth.Login(context.Background(), "maria", "wrong")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientAuthService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	auth := NewClientAuthService(serverAdapter, logger.Nop())

	serverAdapter.EXPECT().
		ResetPassword(gomock.Any(), "maria", "new-secret").
		Return(nil)

	require.NoError(t, auth.ResetPassword(context.Background(), "maria", "new-secret"))

	assert.ErrorIs(t, auth.ResetPassword(context.Background(), "", "new-secret"), ErrInvalidDataProvided)
	assert.ErrorIs(t, auth.ResetPassword(context.Background(), "maria", ""), ErrInvalidDataProvided)
}

func TestClientAuthService_ResetPassword_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	auth := NewClientAuthService(serverAdapter, logger.Nop())

	serverAdapter.EXPECT().
		ResetPassword(gomock.Any(), "ghost", "new-secret").
		Return(adapter.ErrNotFound)

	err := auth.ResetPassword(context.Background(), "ghost", "new-secret")
	assert.True(t, errors.Is(err, adapter.ErrNotFound))
}
