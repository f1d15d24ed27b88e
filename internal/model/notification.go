package model

import "time"

// Notification is a user-facing notice, delivered over the push channel and
// retrievable from the notification history endpoint.
type Notification struct {
	ID        string    `json:"notificationId"`
	Title     string    `json:"title,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
