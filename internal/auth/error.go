package auth

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmptyCredentials = errors.New("email and password required")
	ErrMissingTokens    = errors.New("login response missing tokens")
)
