package community

import (
	"context"

	"zenwell-client/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Questions(ctx context.Context) ([]model.Question, error)
	PostQuestion(ctx context.Context, content string) (model.Question, error)
	Answers(ctx context.Context, questionID string) ([]model.Answer, error)
	PractitionerReviews(ctx context.Context, practitionerID string) ([]model.Review, error)
}
