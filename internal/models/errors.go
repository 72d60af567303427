package models

import "errors"

// Error taxonomy shared by services and handlers. Handlers map each of
// these to a fixed HTTP status; everything else becomes a 500.
var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient privileges")
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("invalid input")
)
