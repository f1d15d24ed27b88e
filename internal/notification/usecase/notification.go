package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"zenwell-client/internal/model"
)

func (uc *usecase) List(ctx context.Context) ([]model.Notification, error) {
	body, err := uc.requester.Do(ctx, http.MethodGet, "/notifications", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	var out []model.Notification
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return out, nil
}

func (uc *usecase) DecodeNotification(payload json.RawMessage) (model.Notification, error) {
	var out model.Notification
	if err := json.Unmarshal(payload, &out); err != nil {
		return model.Notification{}, fmt.Errorf("failed to decode notification payload: %w", err)
	}
	return out, nil
}

func (uc *usecase) DecodeBookingUpdate(payload json.RawMessage) (model.BookingUpdate, error) {
	var out model.BookingUpdate
	if err := json.Unmarshal(payload, &out); err != nil {
		return model.BookingUpdate{}, fmt.Errorf("failed to decode booking update payload: %w", err)
	}
	return out, nil
}
