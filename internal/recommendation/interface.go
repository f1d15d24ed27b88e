package recommendation

import (
	"context"

	"zenwell-client/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate asks the backend's AI engine for a therapy recommendation for
	// the given symptom description.
	Generate(ctx context.Context, symptom string) (model.Recommendation, error)

	Mine(ctx context.Context) ([]model.Recommendation, error)
}
