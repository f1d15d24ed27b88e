package realtime

import "errors"

var (
	// ErrNotConnected is returned by Send when the channel has no live
	// transport. The failure is reported, never queued.
	ErrNotConnected = errors.New("realtime channel not connected")

	// ErrSendBufferFull is returned when the outbound buffer cannot accept
	// another message.
	ErrSendBufferFull = errors.New("realtime send buffer full")

	// ErrMissingUserID is returned by Connect when no user is given.
	ErrMissingUserID = errors.New("user id required to connect")
)
