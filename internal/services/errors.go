package services

import "errors"

// Typed failure outcomes shared by all services. Handlers translate these
// 1:1 to HTTP status codes.
var (
	// ErrUnauthorized means the caller id is missing or resolves to no user.
	ErrUnauthorized = errors.New("caller not recognized")
	// ErrForbidden means the caller resolved but lacks permission.
	ErrForbidden = errors.New("permission denied")
	// ErrNotFound means a referenced message does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means the display name is already registered.
	ErrConflict = errors.New("display name already taken")
	// ErrBadRequest means the request is malformed or self-referential.
	ErrBadRequest = errors.New("bad request")
)
