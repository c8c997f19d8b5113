package types

import (
	"os"
	"path/filepath"

	"github.com/averycrespi/simple-tools-mcp/pkg/project"
)

// Transport names accepted by the serve command.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Environment variables that seed the default configuration.
const (
	EnvEnvironment    = "ENVIRONMENT"
	EnvCredentialsDir = "SIMPLE_TOOLS_CREDENTIALS_DIR"
	EnvAPIBaseURL     = "SIMPLE_TOOLS_API_BASE_URL"
	EnvAPIKey         = "SIMPLE_TOOLS_API_KEY"
)

// EnvironmentLocal selects the file-backed credential client.
const EnvironmentLocal = "local"

// DefaultUser is the user identity assumed when none is configured.
const DefaultUser = "local"

// Config represents the configuration for the simple-tools-mcp server
type Config struct {
	UserID         string `json:"user_id"`
	Transport      string `json:"transport"`
	ListenAddr     string `json:"listen_addr,omitempty"`
	Environment    string `json:"environment,omitempty"`
	CredentialsDir string `json:"credentials_dir,omitempty"`
	APIBaseURL     string `json:"api_base_url,omitempty"`
	APIKey         string `json:"api_key,omitempty"`
	LogLevel       string `json:"log_level,omitempty"`
}

// ConfigFromEnv returns a Config populated with environment-derived defaults.
// Command-line flags are expected to override individual fields afterwards.
func ConfigFromEnv() *Config {
	environment := os.Getenv(EnvEnvironment)
	if environment == "" {
		environment = EnvironmentLocal
	}

	return &Config{
		UserID:         DefaultUser,
		Transport:      TransportStdio,
		ListenAddr:     ":8080",
		Environment:    environment,
		CredentialsDir: defaultCredentialsDir(),
		APIBaseURL:     os.Getenv(EnvAPIBaseURL),
		APIKey:         os.Getenv(EnvAPIKey),
		LogLevel:       "info",
	}
}

// IsLocal reports whether the server runs against local credential files.
func (c *Config) IsLocal() bool {
	return c.Environment == "" || c.Environment == EnvironmentLocal
}

func defaultCredentialsDir() string {
	if dir := os.Getenv(EnvCredentialsDir); dir != "" {
		return dir
	}
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, project.Name, "credentials")
	}
	return filepath.Join("local_auth", "credentials")
}
