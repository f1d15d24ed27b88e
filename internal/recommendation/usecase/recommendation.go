package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"zenwell-client/internal/model"
	"zenwell-client/internal/recommendation"
)

func (uc *usecase) Generate(ctx context.Context, symptom string) (model.Recommendation, error) {
	if strings.TrimSpace(symptom) == "" {
		return model.Recommendation{}, recommendation.ErrEmptySymptom
	}
	payload := map[string]string{"symptom": symptom}
	body, err := uc.requester.Do(ctx, http.MethodPost, "/recommendations/generate", payload, nil)
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("failed to generate recommendation: %w", err)
	}
	var out model.Recommendation
	if err := json.Unmarshal(body, &out); err != nil {
		return model.Recommendation{}, fmt.Errorf("failed to decode recommendation: %w", err)
	}
	return out, nil
}

func (uc *usecase) Mine(ctx context.Context) ([]model.Recommendation, error) {
	body, err := uc.requester.Do(ctx, http.MethodGet, "/recommendations/my", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recommendations: %w", err)
	}
	var out []model.Recommendation
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}
	return out, nil
}
