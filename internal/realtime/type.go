package realtime

import (
	"encoding/json"
	"time"
)

// Config holds the push channel configuration.
type Config struct {
	// URL is the websocket endpoint, e.g. ws://localhost:8080/ws.
	URL string

	// Heartbeat settings. A pong must arrive within PongWait or the
	// connection is considered dead and reconnection begins.
	PingInterval time.Duration
	PongWait     time.Duration
	WriteWait    time.Duration

	// Reconnect backoff bounds. Reconnection is indefinite; Disconnect is
	// the only way out.
	ReconnectInitial time.Duration
	ReconnectMax     time.Duration
}

func (c *Config) applyDefaults() {
	if c.PingInterval <= 0 {
		c.PingInterval = 30 * time.Second
	}
	if c.PongWait <= 0 {
		c.PongWait = 60 * time.Second
	}
	if c.WriteWait <= 0 {
		c.WriteWait = 10 * time.Second
	}
	if c.ReconnectInitial <= 0 {
		c.ReconnectInitial = 5 * time.Second
	}
	if c.ReconnectMax <= 0 {
		c.ReconnectMax = time.Minute
	}
}

// State is the channel connection state.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

// MessageKind is the coarse type tag derived from the topic a message
// arrived on.
type MessageKind string

const (
	KindNotification MessageKind = "notification"
	KindBooking      MessageKind = "booking"
)

// Handler observes inbound push messages. Handlers run synchronously in
// registration order; a failure in one does not stop delivery to the next.
type Handler func(kind MessageKind, payload json.RawMessage)

const sendBufferSize = 64
