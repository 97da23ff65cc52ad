// Package storage implements the persistence for the finance tracker:
// a string-keyed, string-valued store. Absence of a key is a valid state,
// callers are expected to fall back to their defaults.
package storage

import (
	"errors"
)

// ErrUnavailable is returned when the underlying store cannot be accessed.
// The original error is logged, users cannot act on it anyway.
var ErrUnavailable = errors.New("the data store cannot be accessed")

// Store is the persistence collaborator.
type Store interface {
	// Get reads the value for a key. The second return value reports
	// whether the key exists.
	Get(key string) (string, bool, error)

	// Set writes the value for a key, overwriting any previous value.
	Set(key, value string) error

	// Ping verifies that the store can be accessed.
	Ping() error
}
