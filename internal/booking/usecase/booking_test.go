package usecase

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"zenwell-client/internal/booking"
	"zenwell-client/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type fakeRequester struct {
	lastMethod string
	lastPath   string
	lastBody   any
	response   []byte
}

func (f *fakeRequester) Do(ctx context.Context, method, path string, body any, params url.Values) ([]byte, error) {
	f.lastMethod = method
	f.lastPath = path
	f.lastBody = body
	return f.response, nil
}

func (f *fakeRequester) Upload(ctx context.Context, path, field, filename string, file io.Reader) ([]byte, error) {
	return f.response, nil
}

func TestList_ByWindow(t *testing.T) {
	tests := []struct {
		name     string
		call     func(uc booking.UseCase, ctx context.Context) ([]model.Booking, error)
		wantPath string
	}{
		{
			name: "all",
			call: func(uc booking.UseCase, ctx context.Context) ([]model.Booking, error) {
				return uc.List(ctx)
			},
			wantPath: "/bookings",
		},
		{
			name: "upcoming",
			call: func(uc booking.UseCase, ctx context.Context) ([]model.Booking, error) {
				return uc.Upcoming(ctx)
			},
			wantPath: "/bookings/user/upcoming",
		},
		{
			name: "past",
			call: func(uc booking.UseCase, ctx context.Context) ([]model.Booking, error) {
				return uc.Past(ctx)
			},
			wantPath: "/bookings/user/past",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &fakeRequester{response: []byte(`[{"bookingId":"b1","status":"CONFIRMED"}]`)}
			uc := New(&mockLogger{}, req)

			got, err := tt.call(uc, context.Background())
			if err != nil {
				t.Fatalf("call: %v", err)
			}
			if req.lastMethod != http.MethodGet || req.lastPath != tt.wantPath {
				t.Errorf("request = %s %s, want GET %s", req.lastMethod, req.lastPath, tt.wantPath)
			}
			if len(got) != 1 || got[0].ID != "b1" || got[0].Status != model.BookingStatusConfirmed {
				t.Errorf("bookings = %+v", got)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	req := &fakeRequester{response: []byte(`{"bookingId":"b2","practitionerId":"p1","status":"PENDING"}`)}
	uc := New(&mockLogger{}, req)

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	input := booking.CreateInput{
		PractitionerID: "p1",
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
	}
	got, err := uc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if req.lastMethod != http.MethodPost || req.lastPath != "/bookings/create" {
		t.Errorf("request = %s %s", req.lastMethod, req.lastPath)
	}
	sent, ok := req.lastBody.(booking.CreateInput)
	if !ok || sent.PractitionerID != "p1" {
		t.Errorf("request body = %+v", req.lastBody)
	}
	if got.ID != "b2" || got.Status != model.BookingStatusPending {
		t.Errorf("booking = %+v", got)
	}
}

func TestList_DecodeFailure(t *testing.T) {
	req := &fakeRequester{response: []byte(`not json`)}
	uc := New(&mockLogger{}, req)

	if _, err := uc.List(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}
