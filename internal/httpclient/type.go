package httpclient

import (
	"net/http"
	"strings"
	"time"

	"zenwell-client/internal/session"
	"zenwell-client/pkg/log"

	"golang.org/x/sync/singleflight"
)

// Config holds the request client configuration.
type Config struct {
	// BaseURL is the backend origin every path is resolved against.
	BaseURL string
	// Timeout bounds each HTTP call, including the refresh call.
	Timeout time.Duration
}

const defaultTimeout = 15 * time.Second

// Client is the session-aware request client. It attaches the stored bearer
// credential to every outbound call and recovers from credential expiry with
// a single-flight refresh-and-retry.
type Client struct {
	http    *http.Client
	baseURL string
	store   session.Store
	logger  log.Logger

	// onSessionExpired fires after an unrecoverable refresh failure, once the
	// store has been cleared. The caller uses it to route back to login.
	onSessionExpired func()

	// refresh collapses concurrent 401 recoveries into one backend call.
	refresh singleflight.Group
}

// New creates a request client. onSessionExpired may be nil.
func New(cfg Config, store session.Store, logger log.Logger, onSessionExpired func()) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http:             &http.Client{Timeout: timeout},
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		store:            store,
		logger:           logger,
		onSessionExpired: onSessionExpired,
	}
}
