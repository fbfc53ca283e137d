// Package utils holds small helpers shared by the server and the client:
// request-scoped user IDs, JSON responses, JWT handling, retrying HTTP
// client and UUID generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// userIDKey stores the authenticated user's ID. Every file route reads the
// owner from it, so it is only reachable through WithUserID and
// UserIDFromContext.
var userIDKey = contextKey("userID")

// WithUserID returns a copy of ctx that carries userID as the request owner.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the owner stored by WithUserID. IDs are issued
// by a serial column, so a missing or non-positive value reports ok=false.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
