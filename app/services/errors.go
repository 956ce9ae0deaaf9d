package services

import "errors"

// Service-level error taxonomy. Controllers map these onto HTTP status
// codes; repositories.ErrNotFound passes through untouched.
var (
	// ErrValidation marks malformed or missing input fields.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks a uniqueness violation, such as a duplicate username.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized marks a credential mismatch (wrong password).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden marks a missing or invalid token, a bad admin passcode,
	// or an actor touching a resource they do not own.
	ErrForbidden = errors.New("forbidden")

	// ErrInconsistent marks a dependent reference that could not be
	// resolved while maintaining cross-references. The primary mutation has
	// already been applied when this is returned.
	ErrInconsistent = errors.New("inconsistent reference state")
)
