package shop

import (
	"context"

	"zenwell-client/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Products(ctx context.Context) ([]model.Product, error)
	AddToCart(ctx context.Context, ip AddToCartInput) (model.Cart, error)
	CurrentCart(ctx context.Context) (model.Cart, error)
	MyOrders(ctx context.Context) ([]model.Order, error)
}
