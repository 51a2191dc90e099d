package models

import "time"

// ResetToken is a single-use password reset grant.
//
// Token is itself a signed JWT, but redemption relies on ExpiresAt only:
// the token is usable while the current time is strictly before ExpiresAt.
type ResetToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired reports whether the token can no longer be redeemed at now.
func (t ResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
