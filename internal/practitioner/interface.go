package practitioner

import (
	"context"
	"io"

	"zenwell-client/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, ip ProfileInput) (model.Practitioner, error)
	Update(ctx context.Context, ip ProfileInput) (model.Practitioner, error)

	// UploadCertificate posts the certification document as a multipart
	// form.
	UploadCertificate(ctx context.Context, filename string, content io.Reader) error

	Verify(ctx context.Context, practitionerID string) (model.Practitioner, error)
	Verified(ctx context.Context) ([]model.Practitioner, error)
	BySpecialization(ctx context.Context, specialization string) ([]model.Practitioner, error)
	AvailableSlots(ctx context.Context, practitionerID, date string) ([]model.AvailabilitySlot, error)
}
