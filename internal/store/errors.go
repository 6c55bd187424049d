package store

import "errors"

var (
	// ErrNotFound is returned by Get and Delete when the document
	// does not exist. Lookup and delete paths treat it as non-fatal.
	ErrNotFound = errors.New("document not found")

	// ErrUnavailable is returned when the store cannot be reached.
	// Callers must treat the result as unknown, not as absent, and
	// may retry with backoff.
	ErrUnavailable = errors.New("store unavailable")

	// ErrInvalidArgument is returned for empty or malformed
	// identifiers, before any remote call is issued.
	ErrInvalidArgument = errors.New("invalid argument")
)
