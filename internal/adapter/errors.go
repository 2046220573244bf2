package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrProvider marks a failed or rejected completion request against the
	// upstream provider.
	ErrProvider = errors.New("completion provider error")
)
