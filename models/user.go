package models

import "time"

// User represents an account entity used for authentication and authorization.
// Every resource row in the system (subjects, assignments, notes, tests)
// carries the owning user's ID, and all row-level operations are scoped to it.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login identifier chosen at registration.
	Username string `json:"username"`

	// Password carries the plain-text password on inbound requests only.
	// It is never persisted and never written to a response.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in place of the password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ResetPasswordRequest is the body of POST /reset-password.
// No authentication is required; the endpoint rehashes the password of an
// existing account identified by username.
type ResetPasswordRequest struct {
	Username    string `json:"username"`
	NewPassword string `json:"newPassword"`
}
