package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrStatusConflict is returned when a conditional status update matched
	// zero rows, i.e. a concurrent writer advanced the request first.
	ErrStatusConflict = errors.New("request status changed concurrently")
)
