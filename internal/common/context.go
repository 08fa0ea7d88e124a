package common

import "context"

type contextKey string

const UserIDKey contextKey = "user_id"

// WithUserID returns ctx carrying the authenticated user's id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserIDFromContext extracts the authenticated user id set by the
// auth middleware. The second return is false for unauthenticated
// requests.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
