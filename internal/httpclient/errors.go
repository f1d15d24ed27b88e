package httpclient

import "errors"

var (
	// ErrNoRefreshToken means a refresh was needed but the session holds no
	// refresh credential.
	ErrNoRefreshToken = errors.New("no refresh token in session")

	// ErrEmptyRefreshResponse means the refresh endpoint answered without an
	// access token.
	ErrEmptyRefreshResponse = errors.New("refresh response missing access token")
)
