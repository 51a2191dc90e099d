package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of every token issued by the service: session
// tokens returned on login and reset tokens sent by e-mail.
//
// UserID is serialized as "id" so tokens stay compatible with the
// frontend that decodes them.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Token pairs the compact signed form of a token with its decoded claims.
type Token struct {
	// SignedString is the compact JWS representation (header.payload.signature).
	SignedString string `json:"-"`

	// Claims holds the decoded payload.
	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
