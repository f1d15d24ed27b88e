package model

// Practitioner is a wellness practitioner profile.
type Practitioner struct {
	ID             string   `json:"practitionerId"`
	UserID         string   `json:"userId"`
	FullName       string   `json:"fullName"`
	Specialization string   `json:"specialization"`
	Bio            string   `json:"bio,omitempty"`
	HourlyRate     float64  `json:"hourlyRate,omitempty"`
	Verified       bool     `json:"verified"`
	CertificateURL string   `json:"certificateUrl,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
}

// AvailabilitySlot is a bookable time slot for a practitioner on a given day.
type AvailabilitySlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}
