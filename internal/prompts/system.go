// Package prompts defines the prompts advertised by the server.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// PromptSystem is the name of the sample system prompt.
const PromptSystem = "system"

const systemPromptText = "\nSample system prompt\n"

// SystemPrompt serves the sample system prompt
type SystemPrompt struct{}

// NewSystemPrompt creates a new system prompt
func NewSystemPrompt() *SystemPrompt {
	return &SystemPrompt{}
}

// GetPrompt returns the MCP prompt definition
func (p *SystemPrompt) GetPrompt() mcp.Prompt {
	return mcp.NewPrompt(PromptSystem,
		mcp.WithPromptDescription("Sample system prompt"),
	)
}

// Handle processes the prompt request
func (p *SystemPrompt) Handle(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return mcp.NewGetPromptResult(
		"Sample system prompt",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(systemPromptText)),
		},
	), nil
}
