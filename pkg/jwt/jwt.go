package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Parse extracts the claims from an access token without verifying its
// signature. The signing key lives on the backend; clients only read the
// identity the token carries and trust the server that issued it.
func Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

// Expired reports whether the token's exp claim has passed. Tokens without
// an exp claim, or that do not parse as JWTs at all, are not considered
// expired here; the refresh protocol settles their fate on first use.
func Expired(tokenString string, now time.Time) bool {
	claims, err := Parse(tokenString)
	if err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return now.After(claims.ExpiresAt.Time)
}
