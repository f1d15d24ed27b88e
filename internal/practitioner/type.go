package practitioner

// ProfileInput is the practitioner profile create/update payload.
type ProfileInput struct {
	FullName       string   `json:"fullName"`
	Specialization string   `json:"specialization"`
	Bio            string   `json:"bio,omitempty"`
	HourlyRate     float64  `json:"hourlyRate,omitempty"`
	Languages      []string `json:"languages,omitempty"`
}
