package model

import "time"

// Booking statuses pushed by the backend.
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusCompleted = "COMPLETED"
)

// Booking is a session booked with a practitioner.
type Booking struct {
	ID               string    `json:"bookingId"`
	PractitionerID   string    `json:"practitionerId"`
	PractitionerName string    `json:"practitionerName"`
	UserID           string    `json:"userId"`
	SessionType      string    `json:"sessionType,omitempty"`
	Status           string    `json:"status"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Notes            string    `json:"notes,omitempty"`
}

// BookingUpdate is the payload pushed on a user's bookings topic when a
// booking changes state.
type BookingUpdate struct {
	BookingID        string `json:"bookingId,omitempty"`
	Status           string `json:"status"`
	PractitionerName string `json:"practitionerName"`
	Message          string `json:"message,omitempty"`
}
