package session

// Store owns the persisted session. Both the request client and the realtime
// channel read through it; login, the refresh flow, and logout write through
// it. Implementations are safe for concurrent use.
type Store interface {
	// Get returns the current session. A zero Session means logged out.
	Get() (Session, error)

	// Set replaces the whole session.
	Set(s Session) error

	// SetAccessToken replaces only the access token, keeping the rest of the
	// session intact. Used by the refresh flow.
	SetAccessToken(token string) error

	// Clear drops all persisted session state.
	Clear() error
}
