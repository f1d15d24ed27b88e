package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"zenwell-client/internal/community"
	"zenwell-client/internal/model"
)

func (uc *usecase) Questions(ctx context.Context) ([]model.Question, error) {
	body, err := uc.requester.Do(ctx, http.MethodGet, "/qa/questions", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	var out []model.Question
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}
	return out, nil
}

func (uc *usecase) PostQuestion(ctx context.Context, content string) (model.Question, error) {
	if strings.TrimSpace(content) == "" {
		return model.Question{}, community.ErrEmptyQuestion
	}
	payload := map[string]string{"content": content}
	body, err := uc.requester.Do(ctx, http.MethodPost, "/qa/question/post", payload, nil)
	if err != nil {
		return model.Question{}, fmt.Errorf("failed to post question: %w", err)
	}
	var out model.Question
	if err := json.Unmarshal(body, &out); err != nil {
		return model.Question{}, fmt.Errorf("failed to decode question: %w", err)
	}
	return out, nil
}

func (uc *usecase) Answers(ctx context.Context, questionID string) ([]model.Answer, error) {
	params := url.Values{"questionId": {questionID}}
	body, err := uc.requester.Do(ctx, http.MethodGet, "/qa/question/answers", nil, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch answers: %w", err)
	}
	var out []model.Answer
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode answers: %w", err)
	}
	return out, nil
}

func (uc *usecase) PractitionerReviews(ctx context.Context, practitionerID string) ([]model.Review, error) {
	params := url.Values{"practitionerId": {practitionerID}}
	body, err := uc.requester.Do(ctx, http.MethodGet, "/reviews/practitioner", nil, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	var out []model.Review
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return out, nil
}
