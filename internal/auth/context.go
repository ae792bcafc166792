package auth

import "context"

type contextKey string

const userIDContextKey contextKey = "auth-user-id"

// SetUserIDToContext is used by the auth middleware after the session
// token is resolved, so that handlers down the chain know the caller.
func SetUserIDToContext(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	return userID, ok && userID != ""
}
