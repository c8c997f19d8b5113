package project

// Project metadata shared by the CLI and the MCP server.
const (
	// Name is the binary and repository name.
	Name = "simple-tools-mcp"

	// ServerName is the name advertised during MCP initialization.
	ServerName = "simple-tools-server"

	// ServiceName keys credential documents in the auth clients.
	ServiceName = "simple-tools"

	// Version is the server version advertised during MCP initialization.
	Version = "1.0.0"
)
