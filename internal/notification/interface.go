package notification

import (
	"context"
	"encoding/json"

	"zenwell-client/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// List fetches the notification history.
	List(ctx context.Context) ([]model.Notification, error)

	// DecodeNotification decodes a push payload delivered on the
	// notifications topic.
	DecodeNotification(payload json.RawMessage) (model.Notification, error)

	// DecodeBookingUpdate decodes a push payload delivered on the bookings
	// topic.
	DecodeBookingUpdate(payload json.RawMessage) (model.BookingUpdate, error)
}
