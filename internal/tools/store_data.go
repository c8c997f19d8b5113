package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/averycrespi/simple-tools-mcp/internal/results"
	"github.com/averycrespi/simple-tools-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// StoreDataTool handles store data requests
type StoreDataTool struct {
	store types.Store
}

// NewStoreDataTool creates a new store data tool
func NewStoreDataTool(store types.Store) *StoreDataTool {
	return &StoreDataTool{
		store: store,
	}
}

// GetTool returns the MCP tool definition
func (t *StoreDataTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolStoreData,
		mcp.WithDescription("Store a key-value pair in the server"),
		mcp.WithString("key", mcp.Required(), mcp.Description("Key to store the value under")),
		mcp.WithString("value", mcp.Required(), mcp.Description("Value to store")),
	)
	return tool
}

// Handle processes the tool request
func (t *StoreDataTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, errResult := userFromRequest(ctx)
	if errResult != nil {
		return errResult, nil
	}

	key := mcp.ParseString(req, "key", "")
	value := mcp.ParseString(req, "value", "")
	if key == "" || value == "" {
		return mcp.NewToolResultError("Missing key or value"), nil
	}

	if err := t.store.Set(userID, key, value); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to store data: %v", err)), nil
	}

	toolResult := results.NewStoreDataToolResult(key, value)

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
