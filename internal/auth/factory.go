package auth

import (
	"github.com/sirupsen/logrus"

	"github.com/averycrespi/simple-tools-mcp/pkg/types"
)

// NewClient selects a credential client for the given configuration.
// Local environments use file-backed credentials; any other environment
// talks to the hosted credential service, which needs a base URL.
func NewClient(cfg *types.Config, logger *logrus.Logger) Client {
	if logger == nil {
		logger = logrus.New()
	}

	if cfg.IsLocal() {
		return NewLocal(cfg.CredentialsDir, logger)
	}
	if cfg.APIBaseURL == "" {
		logger.WithField("environment", cfg.Environment).
			Warn("No credential service URL configured; falling back to local credential files")
		return NewLocal(cfg.CredentialsDir, logger)
	}
	return NewRemote(cfg.APIBaseURL, cfg.APIKey, logger)
}
