// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/models"
)

func newTestSubjectRepo(t *testing.T) (*subjectRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &subjectRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSubjectList_Success(t *testing.T) {
	repo, mock, db := newTestSubjectRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "name", "description", "user_id"}).
		AddRow(1, "Calculus", "derivatives and integrals", 7).
		AddRow(2, "History", "", 7)

	mock.ExpectQuery("SELECT id, name, description, user_id FROM subjects").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	subjects, err := repo.List(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subjects) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(subjects))
	}
	if subjects[0].Name != "Calculus" {
		t.Errorf("expected first subject Calculus, got %s", subjects[0].Name)
	}
}

func TestSubjectList_Empty(t *testing.T) {
	repo, mock, db := newTestSubjectRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "user_id"})

	mock.ExpectQuery("SELECT id, name, description, user_id FROM subjects").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	subjects, err := repo.List(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subjects == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(subjects) != 0 {
		t.Fatalf("expected 0 subjects, got %d", len(subjects))
	}
}

func TestSubjectCreate_Success(t *testing.T) {
	repo, mock, db := newTestSubjectRepo(t)
	defer db.Close()

	ctx := context.Background()
	subject := models.Subject{Name: "Calculus", Description: "math", UserID: 7}

	rows := sqlmock.
		NewRows([]string{"id", "name", "description", "user_id"}).
		AddRow(3, subject.Name, subject.Description, subject.UserID)

	mock.ExpectQuery("INSERT INTO subjects").
		WithArgs(subject.Name, subject.Description, subject.UserID).
		WillReturnRows(rows)

	created, err := repo.Create(ctx, subject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 3 {
		t.Errorf("expected server-assigned id 3, got %d", created.ID)
	}
}

func TestSubjectUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestSubjectRepo(t)
	defer db.Close()

	ctx := context.Background()
	subject := models.Subject{ID: 99, Name: "Calculus", UserID: 7}

	mock.ExpectQuery("UPDATE subjects").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(ctx, subject)
	if !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
}

func TestSubjectUpdate_Success(t *testing.T) {
	repo, mock, db := newTestSubjectRepo(t)
	defer db.Close()

	ctx := context.Background()
	subject := models.Subject{ID: 3, Name: "Linear Algebra", Description: "vectors", UserID: 7}

	rows := sqlmock.
		NewRows([]string{"id", "name", "description", "user_id"}).
		AddRow(subject.ID, subject.Name, subject.Description, subject.UserID)

	mock.ExpectQuery("UPDATE subjects").
		WithArgs(subject.Name, subject.Description, subject.ID, subject.UserID).
		WillReturnRows(rows)

	updated, err := repo.Update(ctx, subject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Linear Algebra" {
		t.Errorf("expected updated name, got %s", updated.Name)
	}
}

func TestSubjectDelete_Success(t *testing.T) {
	repo, mock, db := newTestSubjectRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM subjects").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(ctx, 7, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubjectDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestSubjectRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM subjects").
		WithArgs(int64(99), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(ctx, 7, 99)
	if !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
}
