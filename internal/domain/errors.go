package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	// ErrNotFound is returned when an entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConstraintViolation is returned for a storage-level uniqueness
	// rejection that cannot be mapped to a more specific scheduling error.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrInvalidInput is returned when a request carries values the domain
	// cannot accept (unknown enum, missing required field, etc.).
	ErrInvalidInput = errors.New("invalid input")
)
