package results

import (
	"fmt"
	"strings"
	"time"

	"github.com/averycrespi/simple-tools-mcp/pkg/types"
)

// ListDataToolResult enumerates every entry in the caller's store. The
// formatted_list field renders one "- key: value" line per entry and is
// omitted when the store is empty.
type ListDataToolResult struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	Action        string         `json:"action"`
	Data          map[string]any `json:"data"`
	Count         int            `json:"count"`
	Message       string         `json:"message"`
	FormattedList string         `json:"formatted_list,omitempty"`
	Timestamp     int64          `json:"timestamp"`
}

// NewListDataToolResult builds the listing result from the entries in
// the order given.
func NewListDataToolResult(entries []types.Entry) ListDataToolResult {
	if len(entries) == 0 {
		return ListDataToolResult{
			ID:        NewOperationID(ActionList),
			Status:    StatusEmpty,
			Action:    ActionList,
			Data:      map[string]any{},
			Count:     0,
			Message:   "No data stored",
			Timestamp: time.Now().Unix(),
		}
	}

	data := make(map[string]any, len(entries))
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		data[entry.Key] = entry.Value
		lines = append(lines, fmt.Sprintf("- %s: %v", entry.Key, entry.Value))
	}

	return ListDataToolResult{
		ID:            NewOperationID(ActionList),
		Status:        StatusSuccess,
		Action:        ActionList,
		Data:          data,
		Count:         len(entries),
		Message:       fmt.Sprintf("Found %d items", len(entries)),
		FormattedList: strings.Join(lines, "\n"),
		Timestamp:     time.Now().Unix(),
	}
}
