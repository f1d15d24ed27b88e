package user

import (
	"context"

	"zenwell-client/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Profile(ctx context.Context) (model.User, error)
	UpdateProfile(ctx context.Context, ip UpdateProfileInput) (model.User, error)
	ChangePassword(ctx context.Context, ip ChangePasswordInput) error
}
