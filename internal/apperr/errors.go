package apperr

import "errors"

var (
	// ErrNoSession means no bearer token is stored; the action needs a login first.
	ErrNoSession = errors.New("no active session")
	// ErrSessionExpired means the server rejected the stored token (401).
	ErrSessionExpired = errors.New("session expired")
	// ErrValidation marks local pre-network input failures.
	ErrValidation = errors.New("validation failed")
	// ErrMissingID means an update/delete was attempted on a record without a server id.
	ErrMissingID = errors.New("record has no server id")
)
