package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"zenwell-client/internal/booking"
	"zenwell-client/internal/model"
)

func (uc *usecase) List(ctx context.Context) ([]model.Booking, error) {
	return uc.fetch(ctx, "/bookings")
}

func (uc *usecase) Upcoming(ctx context.Context) ([]model.Booking, error) {
	return uc.fetch(ctx, "/bookings/user/upcoming")
}

func (uc *usecase) Past(ctx context.Context) ([]model.Booking, error) {
	return uc.fetch(ctx, "/bookings/user/past")
}

func (uc *usecase) Create(ctx context.Context, ip booking.CreateInput) (model.Booking, error) {
	body, err := uc.requester.Do(ctx, http.MethodPost, "/bookings/create", ip, nil)
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}
	var out model.Booking
	if err := json.Unmarshal(body, &out); err != nil {
		return model.Booking{}, fmt.Errorf("failed to decode booking: %w", err)
	}
	return out, nil
}

func (uc *usecase) fetch(ctx context.Context, path string) ([]model.Booking, error) {
	body, err := uc.requester.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	var out []model.Booking
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return out, nil
}
