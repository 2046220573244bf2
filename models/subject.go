package models

// Subject is a course of study that assignments, notes, and tests refer to.
// The reference is a raw identifier: an assignment may point at a subject
// that no longer exists, and deleting a subject leaves its dependents in
// place.
type Subject struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// UserID is the owning user. Populated from the authenticated request,
	// never from the request body.
	UserID int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Subject model.
func (s Subject) TableName() string {
	return "subjects"
}
