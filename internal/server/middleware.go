package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/averycrespi/simple-tools-mcp/internal/auth"
	"github.com/averycrespi/simple-tools-mcp/pkg/project"
)

// identityMiddleware ensures every tool call carries a user identity,
// falling back to the configured default when the transport did not
// resolve one.
func (s *SimpleToolsServer) identityMiddleware(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, ok := auth.UserFromContext(ctx); !ok {
			ctx = auth.ContextWithUser(ctx, s.config.UserID)
		}
		return next(ctx, req)
	}
}

// loggingMiddleware logs every tool call with its resolved user.
func (s *SimpleToolsServer) loggingMiddleware(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID, _ := auth.UserFromContext(ctx)
		s.logger.WithFields(logrus.Fields{
			"tool":      req.Params.Name,
			"user":      userID,
			"arguments": req.GetArguments(),
		}).Info("Calling tool")

		result, err := next(ctx, req)
		if err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"tool": req.Params.Name,
				"user": userID,
			}).Error("Tool call failed")
		}
		return result, err
	}
}

// credentialMiddleware verifies that the caller has an API key on
// record before any tool runs. The key is fetched fresh on every call;
// its presence is what authenticates the caller.
func (s *SimpleToolsServer) credentialMiddleware(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID, _ := auth.UserFromContext(ctx)

		if _, err := s.lookupAPIKey(ctx, userID); err != nil {
			s.logger.WithError(err).WithField("user", userID).Error("Credential check failed")
			return mcp.NewToolResultError(fmt.Sprintf("Authentication error: %v", err)), nil
		}

		return next(ctx, req)
	}
}

// lookupAPIKey fetches the API key stored for userID.
func (s *SimpleToolsServer) lookupAPIKey(ctx context.Context, userID string) (string, error) {
	creds, err := s.authClient.GetUserCredentials(ctx, project.ServiceName, userID)
	if errors.Is(err, auth.ErrCredentialsNotFound) {
		return "", s.missingCredentialsError(userID)
	}
	if err != nil {
		return "", err
	}
	if creds.APIKey == "" {
		return "", s.missingCredentialsError(userID)
	}

	s.logger.WithField("user", userID).Debug("Retrieved API key")
	return creds.APIKey, nil
}

func (s *SimpleToolsServer) missingCredentialsError(userID string) error {
	msg := fmt.Sprintf("Simple Tools API key not found for user %s.", userID)
	if s.config.IsLocal() {
		msg += " Please run authentication first."
	}
	return errors.New(msg)
}
