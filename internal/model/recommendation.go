package model

import "time"

// Recommendation is an AI-generated therapy recommendation.
type Recommendation struct {
	ID           string    `json:"recommendationId"`
	Symptom      string    `json:"symptom"`
	TherapyType  string    `json:"therapyType"`
	Reason       string    `json:"reason,omitempty"`
	Confidence   float64   `json:"confidence,omitempty"`
	GeneratedAt  time.Time `json:"generatedAt"`
	Practitioner string    `json:"suggestedPractitioner,omitempty"`
}
