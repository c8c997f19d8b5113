package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/averycrespi/simple-tools-mcp/internal/results"
	"github.com/averycrespi/simple-tools-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListDataTool handles list data requests
type ListDataTool struct {
	store types.Store
}

// NewListDataTool creates a new list data tool
func NewListDataTool(store types.Store) *ListDataTool {
	return &ListDataTool{
		store: store,
	}
}

// GetTool returns the MCP tool definition
func (t *ListDataTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolListData,
		mcp.WithDescription("List all stored key-value pairs"),
	)
	return tool
}

// Handle processes the tool request
func (t *ListDataTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, errResult := userFromRequest(ctx)
	if errResult != nil {
		return errResult, nil
	}

	entries, err := t.store.List(userID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list data: %v", err)), nil
	}

	toolResult := results.NewListDataToolResult(entries)

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
