package results

import (
	"fmt"
	"time"
)

// StoreDataToolResult acknowledges a completed store operation,
// echoing the written key and value.
type StoreDataToolResult struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	Action        string `json:"action"`
	Key           string `json:"key"`
	Value         any    `json:"value"`
	Message       string `json:"message"`
	Authenticated bool   `json:"authenticated"`
	Timestamp     int64  `json:"timestamp"`
}

// NewStoreDataToolResult builds the acknowledgement for a stored entry.
func NewStoreDataToolResult(key string, value any) StoreDataToolResult {
	return StoreDataToolResult{
		ID:            NewOperationID(ActionStore),
		Status:        StatusSuccess,
		Action:        ActionStore,
		Key:           key,
		Value:         value,
		Message:       fmt.Sprintf("Stored '%s' with value: %v", key, value),
		Authenticated: true,
		Timestamp:     time.Now().Unix(),
	}
}
