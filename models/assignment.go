package models

// AssignmentStatusPending is the status assigned to new assignments when the
// request omits one.
const AssignmentStatusPending = "pending"

// Assignment is a piece of coursework with a due date and a free-form status.
// Completion checkmarks are a client-local concern and are never persisted
// server-side; Status is whatever string the client submits.
type Assignment struct {
	ID          int64  `json:"id"`
	SubjectID   int64  `json:"subject_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Status      string `json:"status"`

	UserID int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Assignment model.
func (a Assignment) TableName() string {
	return "assignments"
}
