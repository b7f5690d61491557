package storage

import "errors"

// Sentinel errors for storage operations.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint (username or
	// email) is violated on insert.
	ErrDuplicate = errors.New("record already exists")
)
