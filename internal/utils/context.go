// Package utils provides general-purpose helpers used across the service:
// type-safe context keys, JSON response writing, the HTTP client used by
// outbound integrations, password hashing, token signing and verification,
// and identifier generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// authenticated user's identifier.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "6650c1...")
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user identifier.
//
// ok is false when the value is missing, empty, or not a string.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
