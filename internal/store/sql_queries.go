package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/studysesh/study-sesh/models"
)

// User statements are static; the resource statements below are built with
// squirrel so the owner filter and RETURNING clauses stay in one place.
const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	updateUserPassword = `UPDATE users SET password_hash = $1 WHERE username = $2;`
)

// psql is the shared squirrel builder configured for PostgreSQL ($N
// placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ownedBy is the owner filter applied to every list statement.
func ownedBy(userID int64) sq.Eq {
	return sq.Eq{"user_id": userID}
}

// ownedRow is the (id AND owner) filter applied to every update and delete.
func ownedRow(userID, id int64) sq.Eq {
	return sq.Eq{"id": id, "user_id": userID}
}

const subjectColumns = "id, name, description, user_id"

func listSubjects(userID int64) sq.SelectBuilder {
	return psql.Select("id", "name", "description", "user_id").
		From(models.Subject{}.TableName()).
		Where(ownedBy(userID)).
		OrderBy("id")
}

func insertSubject(s models.Subject) sq.InsertBuilder {
	return psql.Insert(models.Subject{}.TableName()).
		Columns("name", "description", "user_id").
		Values(s.Name, s.Description, s.UserID).
		Suffix("RETURNING " + subjectColumns)
}

func updateSubject(s models.Subject) sq.UpdateBuilder {
	return psql.Update(models.Subject{}.TableName()).
		Set("name", s.Name).
		Set("description", s.Description).
		Where(ownedRow(s.UserID, s.ID)).
		Suffix("RETURNING " + subjectColumns)
}

const assignmentColumns = "id, subject_id, title, description, due_date, status, user_id"

func listAssignments(userID int64) sq.SelectBuilder {
	return psql.Select("id", "subject_id", "title", "description", "due_date", "status", "user_id").
		From(models.Assignment{}.TableName()).
		Where(ownedBy(userID)).
		OrderBy("id")
}

func insertAssignment(a models.Assignment) sq.InsertBuilder {
	return psql.Insert(models.Assignment{}.TableName()).
		Columns("subject_id", "title", "description", "due_date", "status", "user_id").
		Values(a.SubjectID, a.Title, a.Description, a.DueDate, a.Status, a.UserID).
		Suffix("RETURNING " + assignmentColumns)
}

func updateAssignment(a models.Assignment) sq.UpdateBuilder {
	return psql.Update(models.Assignment{}.TableName()).
		Set("subject_id", a.SubjectID).
		Set("title", a.Title).
		Set("description", a.Description).
		Set("due_date", a.DueDate).
		Set("status", a.Status).
		Where(ownedRow(a.UserID, a.ID)).
		Suffix("RETURNING " + assignmentColumns)
}

const noteColumns = "id, subject_id, title, content, tags, user_id"

func listNotes(userID int64) sq.SelectBuilder {
	return psql.Select("id", "subject_id", "title", "content", "tags", "user_id").
		From(models.Note{}.TableName()).
		Where(ownedBy(userID)).
		OrderBy("id")
}

func insertNote(n models.Note) sq.InsertBuilder {
	return psql.Insert(models.Note{}.TableName()).
		Columns("subject_id", "title", "content", "tags", "user_id").
		Values(n.SubjectID, n.Title, n.Content, n.Tags, n.UserID).
		Suffix("RETURNING " + noteColumns)
}

func updateNote(n models.Note) sq.UpdateBuilder {
	return psql.Update(models.Note{}.TableName()).
		Set("subject_id", n.SubjectID).
		Set("title", n.Title).
		Set("content", n.Content).
		Set("tags", n.Tags).
		Where(ownedRow(n.UserID, n.ID)).
		Suffix("RETURNING " + noteColumns)
}

const testColumns = "id, subject_id, title, test_date, score, user_id"

func listTests(userID int64) sq.SelectBuilder {
	return psql.Select("id", "subject_id", "title", "test_date", "score", "user_id").
		From(models.Test{}.TableName()).
		Where(ownedBy(userID)).
		OrderBy("id")
}

func insertTest(ts models.Test) sq.InsertBuilder {
	return psql.Insert(models.Test{}.TableName()).
		Columns("subject_id", "title", "test_date", "score", "user_id").
		Values(ts.SubjectID, ts.Title, ts.TestDate, ts.Score, ts.UserID).
		Suffix("RETURNING " + testColumns)
}

func updateTest(ts models.Test) sq.UpdateBuilder {
	return psql.Update(models.Test{}.TableName()).
		Set("subject_id", ts.SubjectID).
		Set("title", ts.Title).
		Set("test_date", ts.TestDate).
		Set("score", ts.Score).
		Where(ownedRow(ts.UserID, ts.ID)).
		Suffix("RETURNING " + testColumns)
}

func deleteRow(table string, userID, id int64) sq.DeleteBuilder {
	return psql.Delete(table).Where(ownedRow(userID, id))
}
