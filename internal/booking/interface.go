package booking

import (
	"context"

	"zenwell-client/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) ([]model.Booking, error)
	Upcoming(ctx context.Context) ([]model.Booking, error)
	Past(ctx context.Context) ([]model.Booking, error)
	Create(ctx context.Context, ip CreateInput) (model.Booking, error)
}
