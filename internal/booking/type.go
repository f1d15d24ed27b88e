package booking

import "time"

type CreateInput struct {
	PractitionerID string    `json:"practitionerId"`
	SessionType    string    `json:"sessionType,omitempty"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Notes          string    `json:"notes,omitempty"`
}
