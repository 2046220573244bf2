package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRowNotFound is returned when an update or delete targets a row that
	// does not exist or is owned by a different user. The two cases are
	// deliberately indistinguishable: the owner filter is applied inside the
	// statement, so a foreign row looks exactly like a missing one.
	ErrRowNotFound = errors.New("row not found")
)
