// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/studysesh/study-sesh/internal/adapter"
	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/mock"
	"github.com/studysesh/study-sesh/models"
)

func TestClientAssistantService_TranscriptAccumulates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	assistant := NewClientAssistantService(serverAdapter, logger.Nop())

	ctx := context.Background()

	firstTurn := []models.ChatMessage{
		{Role: "user", Content: "What is osmosis?"},
	}
	secondTurn := []models.ChatMessage{
		{Role: "user", Content: "What is osmosis?"},
		{Role: "assistant", Content: "Water crossing a membrane."},
		{Role: "user", Content: "And in plants?"},
	}

	gomock.InOrder(
		serverAdapter.EXPECT().Ask(gomock.Any(), firstTurn).
			Return("Water crossing a membrane.", nil),
		serverAdapter.EXPECT().Ask(gomock.Any(), secondTurn).
			Return("Roots absorb water the same way.", nil),
	)

	reply, err := assistant.Ask(ctx, "What is osmosis?")
	require.NoError(t, err)
	assert.Equal(t, "Water crossing a membrane.", reply)

	reply, err = assistant.Ask(ctx, "And in plants?")
	require.NoError(t, err)
	assert.Equal(t, "Roots absorb water the same way.", reply)

	transcript := assistant.Transcript()
	require.Len(t, transcript, 4)
	assert.Equal(t, "assistant", transcript[3].Role)
	assert.Equal(t, "Roots absorb water the same way.", assistant.LastAnswer())
}

func TestClientAssistantService_FailedTurnLeavesTranscriptUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	assistant := NewClientAssistantService(serverAdapter, logger.Nop())

	ctx := context.Background()

	gomock.InOrder(
		serverAdapter.EXPECT().Ask(gomock.Any(), gomock.Any()).
			Return("", adapter.ErrInternalServerError),
		// The retry resends the identical single-message transcript.
		serverAdapter.EXPECT().Ask(gomock.Any(), []models.ChatMessage{
			{Role: "user", Content: "What is osmosis?"},
		}).Return("Water crossing a membrane.", nil),
	)

	_, err := assistant.Ask(ctx, "What is osmosis?")
	require.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Empty(t, assistant.Transcript())
	assert.Empty(t, assistant.LastAnswer())

	reply, err := assistant.Ask(ctx, "What is osmosis?")
	require.NoError(t, err)
	assert.Equal(t, "Water crossing a membrane.", reply)
	assert.Len(t, assistant.Transcript(), 2)
}

func TestClientAssistantService_EmptyQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	assistant := NewClientAssistantService(serverAdapter, logger.Nop())

	_, err := assistant.Ask(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidationNoMessages)
}

func TestClientAssistantService_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	assistant := NewClientAssistantService(serverAdapter, logger.Nop())

	serverAdapter.EXPECT().Ask(gomock.Any(), gomock.Any()).
		Return("Water crossing a membrane.", nil)

	_, err := assistant.Ask(context.Background(), "What is osmosis?")
	require.NoError(t, err)
	require.NotEmpty(t, assistant.Transcript())

	assistant.Reset()
	assert.Empty(t, assistant.Transcript())
	assert.Empty(t, assistant.LastAnswer())
}
