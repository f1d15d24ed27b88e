package realtime

import "testing"

func TestKindForTopic(t *testing.T) {
	tests := []struct {
		name     string
		topic    string
		userID   string
		wantKind MessageKind
		wantOK   bool
	}{
		{
			name:     "notifications topic",
			topic:    "/user/42/notifications",
			userID:   "42",
			wantKind: KindNotification,
			wantOK:   true,
		},
		{
			name:     "bookings topic",
			topic:    "/user/42/bookings",
			userID:   "42",
			wantKind: KindBooking,
			wantOK:   true,
		},
		{
			name:   "another user's topic",
			topic:  "/user/7/bookings",
			userID: "42",
			wantOK: false,
		},
		{
			name:   "unknown topic",
			topic:  "/broadcast/system",
			userID: "42",
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := kindForTopic(tt.topic, tt.userID)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && kind != tt.wantKind {
				t.Fatalf("kind = %q, want %q", kind, tt.wantKind)
			}
		})
	}
}

func TestDecodeFrame(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid frame",
			data: `{"type":"message","topic":"/user/42/bookings","payload":{"status":"CONFIRMED"}}`,
		},
		{
			name:    "not json",
			data:    `hello there`,
			wantErr: true,
		},
		{
			name:    "missing topic",
			data:    `{"type":"message","payload":{}}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeFrame([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
