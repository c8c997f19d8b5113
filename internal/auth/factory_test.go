package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/averycrespi/simple-tools-mcp/pkg/types"
)

func TestNewClientLocalEnvironment(t *testing.T) {
	cfg := &types.Config{
		Environment:    types.EnvironmentLocal,
		CredentialsDir: t.TempDir(),
	}

	assert.IsType(t, &Local{}, NewClient(cfg, nil))
}

func TestNewClientHostedEnvironment(t *testing.T) {
	cfg := &types.Config{
		Environment: "hosted",
		APIBaseURL:  "https://api.example.com",
		APIKey:      "sk-service",
	}

	assert.IsType(t, &Remote{}, NewClient(cfg, nil))
}

func TestNewClientHostedWithoutURLFallsBack(t *testing.T) {
	cfg := &types.Config{
		Environment:    "hosted",
		CredentialsDir: t.TempDir(),
	}

	assert.IsType(t, &Local{}, NewClient(cfg, nil))
}
