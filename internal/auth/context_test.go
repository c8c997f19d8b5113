package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserFromContext(t *testing.T) {
	ctx := ContextWithUser(context.Background(), "alice")

	userID, ok := UserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", userID)
}

func TestUserFromContextMissing(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)
}

func TestUserFromContextEmpty(t *testing.T) {
	ctx := ContextWithUser(context.Background(), "")

	_, ok := UserFromContext(ctx)
	assert.False(t, ok)
}
