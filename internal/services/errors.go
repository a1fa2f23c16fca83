package services

import "errors"

// Constraint violations surface as sentinel errors so handlers can map them
// to 409 without depending on driver-specific error codes.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateTagName  = errors.New("tag name already exists")
)
