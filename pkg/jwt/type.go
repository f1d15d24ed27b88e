package jwt

import "github.com/golang-jwt/jwt/v5"

// Claims is the claim set the backend embeds in access tokens.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}
