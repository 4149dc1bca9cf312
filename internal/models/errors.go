package models

import "errors"

// Failure classes shared by services and handlers. Repos and services wrap
// these with context via fmt.Errorf("...: %w", ...); handlers translate them
// to HTTP statuses with errors.Is.
var (
	// ErrUnauthenticated means an operation that needs a signed-in user was
	// called without one.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrNotFound means the referenced event or user has no matching record.
	ErrNotFound = errors.New("not found")

	// ErrValidation means a create/update payload failed validation.
	ErrValidation = errors.New("invalid input")

	// ErrStoreFailure means a request against the external data store
	// failed. Read paths mask it behind empty results; write paths surface
	// it to the caller.
	ErrStoreFailure = errors.New("store operation failed")
)
