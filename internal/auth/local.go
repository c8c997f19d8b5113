package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Local reads and writes credential documents as JSON files under a
// base directory, one file per service and user:
//
//	<dir>/<service>/<user>_credentials.json
//
// It backs local development and self-hosted installations.
type Local struct {
	dir    string
	logger *logrus.Logger
}

// NewLocal creates a file-backed credential client rooted at dir.
func NewLocal(dir string, logger *logrus.Logger) *Local {
	if logger == nil {
		logger = logrus.New()
	}
	return &Local{
		dir:    dir,
		logger: logger,
	}
}

// GetUserCredentials loads the credential file for the given service
// and user. A missing file reports ErrCredentialsNotFound.
func (l *Local) GetUserCredentials(_ context.Context, serviceName, userID string) (*Credentials, error) {
	path := l.credentialsPath(serviceName, userID)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no credential file for %s user %q: %w", serviceName, userID, ErrCredentialsNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credential file %s: %w", path, err)
	}

	l.logger.WithFields(logrus.Fields{
		"service": serviceName,
		"user":    userID,
	}).Debug("Loaded credentials from file")

	return &creds, nil
}

// SaveUserCredentials writes the credential file for the given service
// and user, creating the service directory as needed. The document is
// written to a temporary file and renamed so readers never observe a
// partial write.
func (l *Local) SaveUserCredentials(_ context.Context, serviceName, userID string, creds *Credentials) error {
	if err := os.MkdirAll(filepath.Join(l.dir, serviceName), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	path := l.credentialsPath(serviceName, userID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace credential file: %w", err)
	}

	l.logger.WithFields(logrus.Fields{
		"service": serviceName,
		"user":    userID,
		"path":    path,
	}).Info("Saved credentials")

	return nil
}

func (l *Local) credentialsPath(serviceName, userID string) string {
	return filepath.Join(l.dir, serviceName, fmt.Sprintf("%s_credentials.json", userID))
}
