package model

import "time"

// Question is a community Q&A question.
type Question struct {
	ID          string    `json:"questionId"`
	UserID      string    `json:"userId"`
	AuthorName  string    `json:"authorName,omitempty"`
	Content     string    `json:"content"`
	AnswerCount int       `json:"answerCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Answer is a reply to a community question.
type Answer struct {
	ID         string    `json:"answerId"`
	QuestionID string    `json:"questionId"`
	AuthorName string    `json:"authorName,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Review is a rating left for a practitioner.
type Review struct {
	ID             string    `json:"reviewId"`
	PractitionerID string    `json:"practitionerId"`
	AuthorName     string    `json:"authorName,omitempty"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
