package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const requestTimeout = 30 * time.Second

// APIError describes a non-success response from the credential service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("credential service returned status %d: %s", e.StatusCode, e.Body)
}

// Remote fetches credentials from a hosted credential service over
// HTTP, authenticating with a service API key as a bearer token.
type Remote struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewRemote creates a credential client for the service at baseURL.
func NewRemote(baseURL, apiKey string, logger *logrus.Logger) *Remote {
	if logger == nil {
		logger = logrus.New()
	}
	if apiKey == "" {
		logger.Warn("Remote credential client has no API key; requests will likely be rejected")
	}
	return &Remote{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// GetUserCredentials fetches credentials for the given service and user
// from the hosted service. A 404 reports ErrCredentialsNotFound; any
// other non-200 status surfaces as an APIError.
func (r *Remote) GetUserCredentials(ctx context.Context, serviceName, userID string) (*Credentials, error) {
	endpoint := fmt.Sprintf("%s/auth/%s/credentials?user_id=%s",
		r.baseURL, url.PathEscape(serviceName), url.QueryEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build credentials request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach credential service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("no hosted credentials for %s user %q: %w", serviceName, userID, ErrCredentialsNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var creds Credentials
	if err := json.NewDecoder(resp.Body).Decode(&creds); err != nil {
		return nil, fmt.Errorf("failed to decode credentials response: %w", err)
	}

	r.logger.WithFields(logrus.Fields{
		"service": serviceName,
		"user":    userID,
	}).Debug("Fetched credentials from service")

	return &creds, nil
}

// SaveUserCredentials is not supported by the hosted service, where
// keys are linked through its web interface instead.
func (r *Remote) SaveUserCredentials(_ context.Context, serviceName, _ string, _ *Credentials) error {
	return fmt.Errorf("the hosted credential service does not support saving %s credentials", serviceName)
}
