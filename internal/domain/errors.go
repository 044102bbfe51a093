package domain

import "errors"

// Sentinel errors shared across services and repositories. Repositories map
// driver-level errors (e.g. sql.ErrNoRows) onto these; controllers map them
// onto HTTP status codes.
var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the authenticated user does not own the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is returned on a domain-state violation under transaction,
	// e.g. duplicate registration or zero remaining seats.
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput is returned for malformed or policy-violating input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthenticated is returned when an operation requires an identity and none is present.
	ErrUnauthenticated = errors.New("unauthenticated")
)
