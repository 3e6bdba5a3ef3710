package store

import "errors"

var (
	// ErrNotFound is returned when an account or block is not in the store.
	ErrNotFound = errors.New("not found")
)
