package results

import (
	"fmt"
	"time"
)

// RetrieveDataToolResult carries the value stored under a key, or a
// not_found status when the key has no entry.
type RetrieveDataToolResult struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Action    string `json:"action"`
	Key       string `json:"key"`
	Value     any    `json:"value,omitempty"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// NewRetrieveDataToolResult builds the result for a found entry.
func NewRetrieveDataToolResult(key string, value any) RetrieveDataToolResult {
	return RetrieveDataToolResult{
		ID:        NewOperationID(ActionRetrieve),
		Status:    StatusSuccess,
		Action:    ActionRetrieve,
		Key:       key,
		Value:     value,
		Message:   fmt.Sprintf("Value for '%s': %v", key, value),
		Timestamp: time.Now().Unix(),
	}
}

// NewRetrieveDataNotFoundResult builds the result for a missing key.
func NewRetrieveDataNotFoundResult(key string) RetrieveDataToolResult {
	return RetrieveDataToolResult{
		ID:        NewOperationID(ActionRetrieve),
		Status:    StatusNotFound,
		Action:    ActionRetrieve,
		Key:       key,
		Message:   fmt.Sprintf("Key '%s' not found", key),
		Timestamp: time.Now().Unix(),
	}
}
