package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSaveAndGet(t *testing.T) {
	dir := t.TempDir()
	client := NewLocal(dir, nil)
	ctx := context.Background()

	err := client.SaveUserCredentials(ctx, "simple-tools", "alice", &Credentials{APIKey: "sk-12345"})
	require.NoError(t, err)

	// The document lands at <dir>/<service>/<user>_credentials.json.
	path := filepath.Join(dir, "simple-tools", "alice_credentials.json")
	assert.FileExists(t, path)

	creds, err := client.GetUserCredentials(ctx, "simple-tools", "alice")
	require.NoError(t, err)
	assert.Equal(t, "sk-12345", creds.APIKey)
}

func TestLocalGetMissing(t *testing.T) {
	client := NewLocal(t.TempDir(), nil)

	_, err := client.GetUserCredentials(context.Background(), "simple-tools", "nobody")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
}

func TestLocalGetBareStringDocument(t *testing.T) {
	dir := t.TempDir()
	serviceDir := filepath.Join(dir, "simple-tools")
	require.NoError(t, os.MkdirAll(serviceDir, 0o700))
	path := filepath.Join(serviceDir, "alice_credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`"sk-raw"`), 0o600))

	client := NewLocal(dir, nil)
	creds, err := client.GetUserCredentials(context.Background(), "simple-tools", "alice")
	require.NoError(t, err)
	assert.Equal(t, "sk-raw", creds.APIKey)
}

func TestLocalGetCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	serviceDir := filepath.Join(dir, "simple-tools")
	require.NoError(t, os.MkdirAll(serviceDir, 0o700))
	path := filepath.Join(serviceDir, "alice_credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	client := NewLocal(dir, nil)
	_, err := client.GetUserCredentials(context.Background(), "simple-tools", "alice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCredentialsNotFound)
}

func TestLocalSaveOverwrites(t *testing.T) {
	client := NewLocal(t.TempDir(), nil)
	ctx := context.Background()

	require.NoError(t, client.SaveUserCredentials(ctx, "simple-tools", "alice", &Credentials{APIKey: "sk-old"}))
	require.NoError(t, client.SaveUserCredentials(ctx, "simple-tools", "alice", &Credentials{APIKey: "sk-new"}))

	creds, err := client.GetUserCredentials(ctx, "simple-tools", "alice")
	require.NoError(t, err)
	assert.Equal(t, "sk-new", creds.APIKey)
}

func TestLocalUsersAreSeparate(t *testing.T) {
	client := NewLocal(t.TempDir(), nil)
	ctx := context.Background()

	require.NoError(t, client.SaveUserCredentials(ctx, "simple-tools", "alice", &Credentials{APIKey: "sk-alice"}))

	_, err := client.GetUserCredentials(ctx, "simple-tools", "bob")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
}
