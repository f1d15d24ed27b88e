package realtime

import (
	"encoding/json"
	"fmt"
)

// Frame kinds exchanged on the wire.
const (
	frameSubscribe   = "subscribe"
	frameUnsubscribe = "unsubscribe"
	frameSend        = "send"
)

// frame is the wire envelope for every channel message, inbound and
// outbound.
type frame struct {
	Type    string          `json:"type"`
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (f frame) encode() ([]byte, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	return data, nil
}

func decodeFrame(data []byte) (frame, error) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return frame{}, fmt.Errorf("failed to decode frame: %w", err)
	}
	if f.Topic == "" {
		return frame{}, fmt.Errorf("frame missing topic")
	}
	return f, nil
}

// notificationTopic and bookingTopic are the per-user topics subscribed on
// connect.
func notificationTopic(userID string) string {
	return fmt.Sprintf("/user/%s/notifications", userID)
}

func bookingTopic(userID string) string {
	return fmt.Sprintf("/user/%s/bookings", userID)
}

// kindForTopic maps the delivering topic onto the coarse message kind.
// Messages on unrecognized topics are dropped by the caller.
func kindForTopic(topic, userID string) (MessageKind, bool) {
	switch topic {
	case notificationTopic(userID):
		return KindNotification, true
	case bookingTopic(userID):
		return KindBooking, true
	default:
		return "", false
	}
}
