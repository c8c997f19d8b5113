package types

import "errors"

// Error kinds returned by Store implementations. Callers classify
// failures with errors.Is and map them to tool payloads.
var (
	// ErrInvalidArgument indicates a missing or malformed key or value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates that a key has no entry in the user's store.
	ErrNotFound = errors.New("not found")
)

// Entry is a single key-value pair owned by one user's store.
type Entry struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Store defines the user-scoped key-value store backing the tools.
// Implementations must be safe for concurrent use and must create a
// user's store on first write rather than requiring registration.
type Store interface {
	// Set stores value under key for the given user, overwriting any
	// previous value.
	Set(userID, key string, value any) error

	// Get returns the value stored under key for the given user.
	// It returns ErrNotFound if the key has no entry.
	Get(userID, key string) (any, error)

	// List returns every entry in the user's store. A user with no
	// store yields an empty slice, not an error.
	List(userID string) ([]Entry, error)
}
