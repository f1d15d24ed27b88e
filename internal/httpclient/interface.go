package httpclient

import (
	"context"
	"io"
	"net/url"
)

// Requester issues authenticated calls against the backend. The domain
// usecases depend on this interface rather than on *Client so tests can
// substitute a fake backend without a network.
type Requester interface {
	// Do issues a request and returns the raw response body. body, when
	// non-nil, is JSON-encoded. A 401 response triggers one transparent
	// refresh-and-retry; every other failure is returned as-is.
	Do(ctx context.Context, method, path string, body any, params url.Values) ([]byte, error)

	// Upload posts file as a multipart form under the given field name. The
	// multipart content type, boundary included, is set from the form writer
	// and never overridden.
	Upload(ctx context.Context, path, field, filename string, file io.Reader) ([]byte, error)
}
