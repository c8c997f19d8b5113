package types

import "context"

// Server defines the MCP server interface. Serve blocks until the
// context is cancelled or the transport shuts down.
type Server interface {
	Serve(ctx context.Context) error
}
