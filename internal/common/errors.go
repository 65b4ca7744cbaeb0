package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Lifecycle errors
	ErrUnknownEntityType = errors.New("unknown entity type")
	ErrAlreadyResolved   = errors.New("recycle bin item already restored or permanently deleted")
	ErrEntityGone        = errors.New("entity no longer exists")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
