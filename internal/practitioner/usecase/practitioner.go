package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"zenwell-client/internal/model"
	"zenwell-client/internal/practitioner"
)

// certificateField is the multipart form field the backend expects.
const certificateField = "certificate"

func (uc *usecase) Create(ctx context.Context, ip practitioner.ProfileInput) (model.Practitioner, error) {
	return uc.submit(ctx, http.MethodPost, "/practitioners", ip)
}

func (uc *usecase) Update(ctx context.Context, ip practitioner.ProfileInput) (model.Practitioner, error) {
	return uc.submit(ctx, http.MethodPut, "/practitioners/update", ip)
}

func (uc *usecase) UploadCertificate(ctx context.Context, filename string, content io.Reader) error {
	if _, err := uc.requester.Upload(ctx, "/practitioners/certificate", certificateField, filename, content); err != nil {
		return fmt.Errorf("failed to upload certificate: %w", err)
	}
	uc.l.Infof(ctx, "uploaded certificate %s", filename)
	return nil
}

func (uc *usecase) Verify(ctx context.Context, practitionerID string) (model.Practitioner, error) {
	params := url.Values{"practitionerId": {practitionerID}}
	body, err := uc.requester.Do(ctx, http.MethodGet, "/practitioners/verify", nil, params)
	if err != nil {
		return model.Practitioner{}, fmt.Errorf("failed to verify practitioner: %w", err)
	}
	var out model.Practitioner
	if err := json.Unmarshal(body, &out); err != nil {
		return model.Practitioner{}, fmt.Errorf("failed to decode practitioner: %w", err)
	}
	return out, nil
}

func (uc *usecase) Verified(ctx context.Context) ([]model.Practitioner, error) {
	return uc.list(ctx, "/practitioners/verified", nil)
}

func (uc *usecase) BySpecialization(ctx context.Context, specialization string) ([]model.Practitioner, error) {
	params := url.Values{"specialization": {specialization}}
	return uc.list(ctx, "/practitioners/verified/specialization", params)
}

func (uc *usecase) AvailableSlots(ctx context.Context, practitionerID, date string) ([]model.AvailabilitySlot, error) {
	params := url.Values{
		"practitionerId": {practitionerID},
		"date":           {date},
	}
	body, err := uc.requester.Do(ctx, http.MethodGet, "/practitioners/availability/slots", nil, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	var out []model.AvailabilitySlot
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode availability: %w", err)
	}
	return out, nil
}

func (uc *usecase) submit(ctx context.Context, method, path string, ip practitioner.ProfileInput) (model.Practitioner, error) {
	body, err := uc.requester.Do(ctx, method, path, ip, nil)
	if err != nil {
		return model.Practitioner{}, fmt.Errorf("failed to submit practitioner profile: %w", err)
	}
	var out model.Practitioner
	if err := json.Unmarshal(body, &out); err != nil {
		return model.Practitioner{}, fmt.Errorf("failed to decode practitioner: %w", err)
	}
	return out, nil
}

func (uc *usecase) list(ctx context.Context, path string, params url.Values) ([]model.Practitioner, error) {
	body, err := uc.requester.Do(ctx, http.MethodGet, path, nil, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch practitioners: %w", err)
	}
	var out []model.Practitioner
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode practitioners: %w", err)
	}
	return out, nil
}
