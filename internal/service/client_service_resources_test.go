// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/studysesh/study-sesh/internal/adapter"
	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/mock"
	"github.com/studysesh/study-sesh/internal/store"
	"github.com/studysesh/study-sesh/models"
)

func newTestDoneStore(t *testing.T) *store.DoneStore {
	t.Helper()

	doneStore, err := store.NewDoneStore(context.Background(),
		filepath.Join(t.TempDir(), "done.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = doneStore.Close() })

	return doneStore
}

// ─────────────────────────── subjects ───────────────────────────

func TestClientSubjectService_CreateRefetchesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	subjects := NewClientSubjectService(serverAdapter, logger.Nop())

	submitted := models.Subject{Name: "Physics"}
	refreshed := []models.Subject{{ID: 1, Name: "Math"}, {ID: 2, Name: "Physics"}}

	gomock.InOrder(
		serverAdapter.EXPECT().CreateSubject(gomock.Any(), submitted).
			Return(models.Subject{ID: 2, Name: "Physics"}, nil),
		serverAdapter.EXPECT().ListSubjects(gomock.Any()).Return(refreshed, nil),
	)

	got, err := subjects.Create(context.Background(), submitted)
	require.NoError(t, err)
	assert.Equal(t, refreshed, got)
}

func TestClientSubjectService_CreateFailureSkipsRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	subjects := NewClientSubjectService(serverAdapter, logger.Nop())

	serverAdapter.EXPECT().CreateSubject(gomock.Any(), gomock.Any()).
		Return(models.Subject{}, adapter.ErrBadRequest)

	got, err := subjects.Create(context.Background(), models.Subject{})
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Nil(t, got)
}

func TestClientSubjectService_UpdateAndDeleteRefetchList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	subjects := NewClientSubjectService(serverAdapter, logger.Nop())

	renamed := models.Subject{ID: 1, Name: "Applied Math"}
	afterUpdate := []models.Subject{renamed}

	gomock.InOrder(
		serverAdapter.EXPECT().UpdateSubject(gomock.Any(), renamed).Return(renamed, nil),
		serverAdapter.EXPECT().ListSubjects(gomock.Any()).Return(afterUpdate, nil),
		serverAdapter.EXPECT().DeleteSubject(gomock.Any(), int64(1)).Return(nil),
		serverAdapter.EXPECT().ListSubjects(gomock.Any()).Return([]models.Subject{}, nil),
	)

	got, err := subjects.Update(context.Background(), renamed)
	require.NoError(t, err)
	assert.Equal(t, afterUpdate, got)

	got, err = subjects.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ─────────────────────────── assignments ───────────────────────────

func TestClientAssignmentService_ToggleDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	assignments := NewClientAssignmentService(serverAdapter, newTestDoneStore(t), logger.Nop())

	ctx := context.Background()

	done, err := assignments.DoneSet(ctx)
	require.NoError(t, err)
	assert.Empty(t, done)

	require.NoError(t, assignments.ToggleDone(ctx, 7))

	done, err = assignments.DoneSet(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{7: true}, done)

	// A second toggle flips the flag back off.
	require.NoError(t, assignments.ToggleDone(ctx, 7))

	done, err = assignments.DoneSet(ctx)
	require.NoError(t, err)
	assert.Empty(t, done)
}

func TestClientAssignmentService_DeleteClearsDoneFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	assignments := NewClientAssignmentService(serverAdapter, newTestDoneStore(t), logger.Nop())

	ctx := context.Background()
	require.NoError(t, assignments.ToggleDone(ctx, 7))

	serverAdapter.EXPECT().DeleteAssignment(gomock.Any(), int64(7)).Return(nil)
	serverAdapter.EXPECT().ListAssignments(gomock.Any()).Return([]models.Assignment{}, nil)

	_, err := assignments.Delete(ctx, 7)
	require.NoError(t, err)

	done, err := assignments.DoneSet(ctx)
	require.NoError(t, err)
	assert.Empty(t, done, "deleting an assignment must clear its local done flag")
}

func TestClientAssignmentService_CreateRefetchesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	assignments := NewClientAssignmentService(serverAdapter, newTestDoneStore(t), logger.Nop())

	submitted := models.Assignment{Title: "Problem set 3", SubjectID: 1}
	refreshed := []models.Assignment{{ID: 9, Title: "Problem set 3", SubjectID: 1, Status: "pending"}}

	gomock.InOrder(
		serverAdapter.EXPECT().CreateAssignment(gomock.Any(), submitted).
			Return(refreshed[0], nil),
		serverAdapter.EXPECT().ListAssignments(gomock.Any()).Return(refreshed, nil),
	)

	got, err := assignments.Create(context.Background(), submitted)
	require.NoError(t, err)
	assert.Equal(t, refreshed, got)
}

// ─────────────────────────── notes and tests ───────────────────────────

func TestClientNoteService_UpdateRefetchesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	notes := NewClientNoteService(serverAdapter, logger.Nop())

	edited := models.Note{ID: 3, Title: "Lecture 4", Content: "updated"}
	refreshed := []models.Note{edited}

	gomock.InOrder(
		serverAdapter.EXPECT().UpdateNote(gomock.Any(), edited).Return(edited, nil),
		serverAdapter.EXPECT().ListNotes(gomock.Any()).Return(refreshed, nil),
	)

	got, err := notes.Update(context.Background(), edited)
	require.NoError(t, err)
	assert.Equal(t, refreshed, got)
}

func TestClientTestService_DeleteNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	tests := NewClientTestService(serverAdapter, logger.Nop())

	serverAdapter.EXPECT().DeleteTest(gomock.Any(), int64(99)).Return(adapter.ErrNotFound)

	got, err := tests.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Nil(t, got)
}
