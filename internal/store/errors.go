package store

import "errors"

var (
	// ErrActivityNotFound indicates no activity matched the requested
	// (name, grouping) pair.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrEmptyActivityName indicates an activity was submitted without a name.
	ErrEmptyActivityName = errors.New("activity name must not be empty")

	// ErrReadOnly indicates a write was attempted on a read-only store.
	ErrReadOnly = errors.New("store is open read-only")
)
