package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shortener-users/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NewClaims builds the payload of a token issued for userID.
//
// Every call gets a fresh random token ID (jti), so two tokens issued for the
// same user within the same second still differ. Expiry is set only when
// ttl is positive; a zero ttl yields a token that never expires.
//
// Example usage:
//
//	claims := utils.NewClaims("go-shortener-users", user.ID, time.Hour)
func NewClaims(issuer, userID string, ttl time.Duration) models.Claims {
	now := time.Now()
	claims := models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return claims
}

// GenerateJWTToken signs claims with HMAC-SHA256 and returns the compact
// token string.
//
// Returns:
//
//	string - the signed token (header.payload.signature)
//	error  - non-nil if signKey is empty or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(claims, "secret")
func GenerateJWTToken(claims models.Claims, signKey string) (string, error) {
	if signKey == "" {
		return "", ErrEmptySignKey
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check, when tokenIssuer is not empty
//   - Expiration (exp) claim check, when the claim is present
//   - Presence of the user id claim
//
// An expired token yields [ErrTokenExpired]; every other failure yields
// [ErrInvalidToken]. The underlying jwt error is wrapped for logging.
//
// Example usage:
//
//	claims, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "my-service")
//	if errors.Is(err, utils.ErrTokenExpired) {
//	    // ask the user to log in again
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.UserID == "" {
		return models.Claims{}, fmt.Errorf("%w: empty user id", ErrInvalidToken)
	}

	return claims, nil
}
