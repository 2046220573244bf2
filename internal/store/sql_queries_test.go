// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

package store

import (
	"testing"

	"github.com/studysesh/study-sesh/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSubjectsSQL(t *testing.T) {
	query, args, err := listSubjects(7).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, description, user_id FROM subjects WHERE user_id = $1 ORDER BY id", query)
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestInsertAssignmentSQL(t *testing.T) {
	a := models.Assignment{
		SubjectID:   2,
		Title:       "problem set 4",
		Description: "chapters 5-6",
		DueDate:     "2026-09-15",
		Status:      models.AssignmentStatusPending,
		UserID:      7,
	}

	query, args, err := insertAssignment(a).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO assignments (subject_id,title,description,due_date,status,user_id) "+
			"VALUES ($1,$2,$3,$4,$5,$6) "+
			"RETURNING id, subject_id, title, description, due_date, status, user_id",
		query)
	assert.Len(t, args, 6)
	assert.Equal(t, "pending", args[4])
}

func TestUpdateNoteSQL(t *testing.T) {
	n := models.Note{
		ID:        11,
		SubjectID: 2,
		Title:     "lecture 9",
		Content:   `{"root":{"children":[]}}`,
		Tags:      "math,exam",
		UserID:    7,
	}

	query, args, err := updateNote(n).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE notes SET subject_id = $1, title = $2, content = $3, tags = $4 "+
			"WHERE id = $5 AND user_id = $6 "+
			"RETURNING id, subject_id, title, content, tags, user_id",
		query)
	// ownedRow sorts its keys, so id precedes user_id.
	assert.Equal(t, int64(11), args[4])
	assert.Equal(t, int64(7), args[5])
}

func TestDeleteRowSQL(t *testing.T) {
	query, args, err := deleteRow(models.Test{}.TableName(), 7, 42).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM tests WHERE id = $1 AND user_id = $2", query)
	assert.Equal(t, []interface{}{int64(42), int64(7)}, args)
}
