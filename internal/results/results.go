// Package results defines the JSON payloads returned by the simple
// tools. Every payload carries an operation id, a status, and a
// human-readable message alongside the tool-specific fields.
package results

import (
	"fmt"

	"github.com/google/uuid"
)

// Operation statuses reported in tool results.
const (
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
	StatusEmpty    = "empty"
)

// Actions identifying the operation behind a result.
const (
	ActionStore    = "store"
	ActionRetrieve = "retrieve"
	ActionList     = "list"
)

// NewOperationID returns a short identifier for a single tool
// invocation, prefixed with the action name.
func NewOperationID(action string) string {
	return fmt.Sprintf("%s_%s", action, uuid.NewString()[:8])
}
