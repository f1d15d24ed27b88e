package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Login authenticates with the backend and persists the returned
	// session.
	Login(ctx context.Context, ip LoginInput) (Identity, error)

	// Register creates a new account. It does not log the account in.
	Register(ctx context.Context, ip RegisterInput) error

	// Logout revokes the refresh credential and tears the local session
	// down. The local teardown happens even when the network call fails.
	Logout(ctx context.Context) error

	// CurrentUser returns the identity persisted with the session.
	CurrentUser() (Identity, error)

	// IsAuthenticated reports whether a usable access credential is stored.
	IsAuthenticated() bool
}
