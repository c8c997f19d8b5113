package tools

import (
	"context"

	"github.com/averycrespi/simple-tools-mcp/internal/auth"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names
const (
	ToolStoreData    = "store_data"
	ToolRetrieveData = "retrieve_data"
	ToolListData     = "list_data"
)

// userFromRequest resolves the caller identity that the serving
// transport attached to the request context.
func userFromRequest(ctx context.Context) (string, *mcp.CallToolResult) {
	userID, ok := auth.UserFromContext(ctx)
	if !ok {
		return "", mcp.NewToolResultError("No user identity in request context")
	}
	return userID, nil
}
