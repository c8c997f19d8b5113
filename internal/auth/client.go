package auth

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrCredentialsNotFound indicates that no credentials are stored for
// the requested service and user.
var ErrCredentialsNotFound = errors.New("credentials not found")

// Credentials is the secret material stored for one user of a service.
type Credentials struct {
	APIKey string `json:"api_key"`
}

// UnmarshalJSON accepts either a JSON object with an api_key field or a
// bare JSON string holding the key itself. Both document forms exist in
// the wild, so readers tolerate each.
func (c *Credentials) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		c.APIKey = bare
		return nil
	}

	type document Credentials
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*c = Credentials(doc)
	return nil
}

// Client resolves and persists credentials for users of a service.
// Implementations return ErrCredentialsNotFound when a user has no
// stored credentials for the service.
type Client interface {
	// GetUserCredentials returns ready-to-use credentials for the
	// given service and user.
	GetUserCredentials(ctx context.Context, serviceName, userID string) (*Credentials, error)

	// SaveUserCredentials persists credentials for the given service
	// and user. Not every client supports saving.
	SaveUserCredentials(ctx context.Context, serviceName, userID string, creds *Credentials) error
}
