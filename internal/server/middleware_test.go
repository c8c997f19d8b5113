package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averycrespi/simple-tools-mcp/pkg/types"
)

func TestLookupAPIKey(t *testing.T) {
	s, cfg := newTestServer(t)
	seedCredentials(t, cfg, "alice", "sk-alice")

	apiKey, err := s.lookupAPIKey(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "sk-alice", apiKey)
}

func TestLookupAPIKeyMissingUser(t *testing.T) {
	s, _ := newTestServer(t)

	_, err := s.lookupAPIKey(context.Background(), "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Simple Tools API key not found for user nobody")
}

func TestLookupAPIKeyEmptyStoredKey(t *testing.T) {
	s, cfg := newTestServer(t)
	seedCredentials(t, cfg, "alice", "")

	// A credential document without a usable key counts as missing.
	_, err := s.lookupAPIKey(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Simple Tools API key not found for user alice")
}

func TestMissingCredentialsErrorMessages(t *testing.T) {
	s, _ := newTestServer(t)
	assert.Equal(t,
		"Simple Tools API key not found for user alice. Please run authentication first.",
		s.missingCredentialsError("alice").Error())

	hostedCfg := &types.Config{
		UserID:      "u1",
		Transport:   types.TransportStdio,
		Environment: "hosted",
		APIBaseURL:  "https://api.example.com",
		APIKey:      "sk-service",
	}
	hosted := NewSimpleToolsServer(hostedCfg, quietLogger())
	assert.Equal(t,
		"Simple Tools API key not found for user u1.",
		hosted.missingCredentialsError("u1").Error())
}
