package realtime

import "context"

// Channel is the real-time push channel for one authenticated session. It is
// created after login and torn down on logout; there is no shared global
// instance.
type Channel interface {
	// Connect establishes the channel for the given user and subscribes to
	// their topics. Calling Connect while the channel is already up is a
	// no-op. The connection is kept alive with reconnect backoff until
	// Disconnect or ctx cancellation.
	Connect(ctx context.Context, userID string) error

	// OnMessage registers an observer for every inbound message. Observers
	// run in registration order and are individually isolated.
	OnMessage(h Handler)

	// Send publishes payload to a destination topic. It reports failure when
	// disconnected instead of queueing or panicking.
	Send(ctx context.Context, destination string, payload any) error

	// Disconnect unsubscribes all topics and tears down the transport. It is
	// idempotent and stops the reconnect loop.
	Disconnect()

	// IsConnected is a synchronous snapshot of the connection state.
	IsConnected() bool

	// Subscribed reports whether the current connection holds an active
	// subscription for topic.
	Subscribed(topic string) bool
}
