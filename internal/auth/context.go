package auth

import "context"

type userKey struct{}

// ContextWithUser returns a context carrying the resolved user
// identity. Transports attach the identity before any tool runs.
func ContextWithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

// UserFromContext returns the user identity carried by ctx, if any.
func UserFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userKey{}).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
