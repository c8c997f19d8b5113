package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/averycrespi/simple-tools-mcp/internal/auth"
	"github.com/averycrespi/simple-tools-mcp/internal/prompts"
	"github.com/averycrespi/simple-tools-mcp/internal/store"
	"github.com/averycrespi/simple-tools-mcp/internal/tools"
	"github.com/averycrespi/simple-tools-mcp/pkg/project"
	"github.com/averycrespi/simple-tools-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

const shutdownTimeout = 5 * time.Second

var _ types.Server = &SimpleToolsServer{}

// SimpleToolsServer represents the simple tools MCP server
type SimpleToolsServer struct {
	mcpServer  *server.MCPServer
	store      types.Store
	authClient auth.Client
	config     *types.Config
	logger     *logrus.Logger
}

// NewSimpleToolsServer creates a new simple tools MCP server
func NewSimpleToolsServer(config *types.Config, logger *logrus.Logger) *SimpleToolsServer {
	if logger == nil {
		logger = logrus.New()
	}

	s := &SimpleToolsServer{
		store:      store.NewMemoryStore(),
		authClient: auth.NewClient(config, logger),
		config:     config,
		logger:     logger,
	}

	s.mcpServer = server.NewMCPServer(
		project.ServerName,
		project.Version,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.identityMiddleware),
		server.WithToolHandlerMiddleware(s.loggingMiddleware),
		server.WithToolHandlerMiddleware(s.credentialMiddleware),
	)

	s.registerTools()
	s.registerPrompts()

	return s
}

// Serve runs the server over the configured transport until the
// context is cancelled or the transport shuts down.
func (s *SimpleToolsServer) Serve(ctx context.Context) error {
	s.logger.WithFields(logrus.Fields{
		"transport":   s.config.Transport,
		"user":        s.config.UserID,
		"environment": s.config.Environment,
	}).Info("Starting MCP server")

	switch s.config.Transport {
	case types.TransportStdio, "":
		return s.serveStdio()
	case types.TransportSSE:
		return s.serveSSE(ctx)
	default:
		return fmt.Errorf("unknown transport %q", s.config.Transport)
	}
}

// serveStdio serves over stdin and stdout. Every request carries the
// configured user identity. Stdio serving installs its own signal
// handling and runs until stdin closes.
func (s *SimpleToolsServer) serveStdio() error {
	contextFunc := func(ctx context.Context) context.Context {
		return auth.ContextWithUser(ctx, s.config.UserID)
	}

	if err := server.ServeStdio(s.mcpServer, server.WithStdioContextFunc(contextFunc)); err != nil {
		return fmt.Errorf("failed to serve MCP server over stdio: %w", err)
	}

	return nil
}

// serveSSE serves over HTTP with server-sent events. The caller's
// identity is resolved per request from the X-User-ID header, the
// user_id query parameter, or the configured default.
func (s *SimpleToolsServer) serveSSE(ctx context.Context) error {
	if s.config.ListenAddr == "" {
		return errors.New("sse transport requires a listen address")
	}

	contextFunc := func(ctx context.Context, r *http.Request) context.Context {
		return auth.ContextWithUser(ctx, s.resolveHTTPUser(r))
	}

	sseServer := server.NewSSEServer(s.mcpServer, server.WithSSEContextFunc(contextFunc))

	errCh := make(chan error, 1)
	go func() {
		errCh <- sseServer.Start(s.config.ListenAddr)
	}()

	s.logger.WithField("addr", s.config.ListenAddr).Info("Listening for SSE connections")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve MCP server over SSE: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down SSE server: %w", err)
		}
		return nil
	}
}

// resolveHTTPUser picks the user identity for an incoming HTTP request.
func (s *SimpleToolsServer) resolveHTTPUser(r *http.Request) string {
	if userID := r.Header.Get("X-User-ID"); userID != "" {
		return userID
	}
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		return userID
	}
	return s.config.UserID
}

func (s *SimpleToolsServer) registerTools() {
	storeTool := tools.NewStoreDataTool(s.store)
	s.mcpServer.AddTool(storeTool.GetTool(), storeTool.Handle)

	retrieveTool := tools.NewRetrieveDataTool(s.store)
	s.mcpServer.AddTool(retrieveTool.GetTool(), retrieveTool.Handle)

	listTool := tools.NewListDataTool(s.store)
	s.mcpServer.AddTool(listTool.GetTool(), listTool.Handle)
}

func (s *SimpleToolsServer) registerPrompts() {
	systemPrompt := prompts.NewSystemPrompt()
	s.mcpServer.AddPrompt(systemPrompt.GetPrompt(), systemPrompt.Handle)
}
