package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/averycrespi/simple-tools-mcp/internal/results"
	"github.com/averycrespi/simple-tools-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// RetrieveDataTool handles retrieve data requests
type RetrieveDataTool struct {
	store types.Store
}

// NewRetrieveDataTool creates a new retrieve data tool
func NewRetrieveDataTool(store types.Store) *RetrieveDataTool {
	return &RetrieveDataTool{
		store: store,
	}
}

// GetTool returns the MCP tool definition
func (t *RetrieveDataTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolRetrieveData,
		mcp.WithDescription("Retrieve a value by its key"),
		mcp.WithString("key", mcp.Required(), mcp.Description("Key to look up")),
	)
	return tool
}

// Handle processes the tool request. A missing key reports a
// not_found payload rather than a protocol error, so callers can
// distinguish absence from failure.
func (t *RetrieveDataTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, errResult := userFromRequest(ctx)
	if errResult != nil {
		return errResult, nil
	}

	key := mcp.ParseString(req, "key", "")
	if key == "" {
		return mcp.NewToolResultError("Missing key"), nil
	}

	var toolResult results.RetrieveDataToolResult
	value, err := t.store.Get(userID, key)
	switch {
	case errors.Is(err, types.ErrNotFound):
		toolResult = results.NewRetrieveDataNotFoundResult(key)
	case err != nil:
		return mcp.NewToolResultError(fmt.Sprintf("Failed to retrieve data: %v", err)), nil
	default:
		toolResult = results.NewRetrieveDataToolResult(key, value)
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
