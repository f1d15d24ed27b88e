package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"zenwell-client/internal/model"
	"zenwell-client/internal/shop"
)

func (uc *usecase) Products(ctx context.Context) ([]model.Product, error) {
	body, err := uc.requester.Do(ctx, http.MethodGet, "/products", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	var out []model.Product
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return out, nil
}

func (uc *usecase) AddToCart(ctx context.Context, ip shop.AddToCartInput) (model.Cart, error) {
	body, err := uc.requester.Do(ctx, http.MethodPost, "/cart/add", ip, nil)
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to add to cart: %w", err)
	}
	return decodeCart(body)
}

func (uc *usecase) CurrentCart(ctx context.Context) (model.Cart, error) {
	body, err := uc.requester.Do(ctx, http.MethodGet, "/cart/current", nil, nil)
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to fetch cart: %w", err)
	}
	return decodeCart(body)
}

func (uc *usecase) MyOrders(ctx context.Context) ([]model.Order, error) {
	body, err := uc.requester.Do(ctx, http.MethodGet, "/orders/my", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	var out []model.Order
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return out, nil
}

func decodeCart(body []byte) (model.Cart, error) {
	var out model.Cart
	if err := json.Unmarshal(body, &out); err != nil {
		return model.Cart{}, fmt.Errorf("failed to decode cart: %w", err)
	}
	return out, nil
}
