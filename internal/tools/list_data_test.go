package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averycrespi/simple-tools-mcp/internal/store"
)

func TestListDataToolHandle(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Set("alice", "color", "blue"))
	require.NoError(t, s.Set("alice", "city", "Toronto"))
	tool := NewListDataTool(s)

	result, err := tool.Handle(userContext("alice"),
		newCallToolRequest(ToolListData, nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	payload := resultPayload(t, result)
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, "list", payload["action"])
	assert.Equal(t, float64(2), payload["count"])
	assert.Equal(t, "Found 2 items", payload["message"])
	assert.Equal(t, map[string]any{"city": "Toronto", "color": "blue"}, payload["data"])
	assert.Equal(t, "- city: Toronto\n- color: blue", payload["formatted_list"])
	assert.True(t, strings.HasPrefix(payload["id"].(string), "list_"))
}

func TestListDataToolEmpty(t *testing.T) {
	tool := NewListDataTool(store.NewMemoryStore())

	result, err := tool.Handle(userContext("alice"),
		newCallToolRequest(ToolListData, nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	payload := resultPayload(t, result)
	assert.Equal(t, "empty", payload["status"])
	assert.Equal(t, float64(0), payload["count"])
	assert.Equal(t, "No data stored", payload["message"])
	assert.Equal(t, map[string]any{}, payload["data"])
	assert.NotContains(t, payload, "formatted_list")
}

func TestListDataToolIgnoresOtherUsers(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Set("alice", "color", "blue"))
	tool := NewListDataTool(s)

	result, err := tool.Handle(userContext("bob"),
		newCallToolRequest(ToolListData, nil))
	require.NoError(t, err)

	payload := resultPayload(t, result)
	assert.Equal(t, "empty", payload["status"])
}

func TestListDataToolNoUserIdentity(t *testing.T) {
	tool := NewListDataTool(store.NewMemoryStore())

	result, err := tool.Handle(context.Background(),
		newCallToolRequest(ToolListData, nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
