package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	pkgErrors "zenwell-client/pkg/errors"

	"github.com/google/uuid"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"

	contentTypeJSON = "application/json"

	bearerPrefix = "Bearer "
)

// Do implements Requester.
func (c *Client) Do(ctx context.Context, method, path string, body any, params url.Values) ([]byte, error) {
	var payload []byte
	var contentType string
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = data
		contentType = contentTypeJSON
	}
	return c.roundTrip(ctx, method, path, payload, contentType, params)
}

// Upload implements Requester. The multipart body is buffered up front so a
// refresh-triggered resubmit can replay it.
func (c *Client) Upload(ctx context.Context, path, field, filename string, file io.Reader) ([]byte, error) {
	buf := &bytes.Buffer{}
	form := multipart.NewWriter(buf)
	part, err := form.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read upload content: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart form: %w", err)
	}
	return c.roundTrip(ctx, http.MethodPost, path, buf.Bytes(), form.FormDataContentType(), nil)
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	return c.Do(ctx, http.MethodGet, path, nil, params)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Do(ctx, http.MethodPost, path, body, nil)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Do(ctx, http.MethodPut, path, body, nil)
}

// roundTrip sends the request with the stored access credential and retries
// it at most once after a successful refresh. A request that already retried
// never triggers a second refresh.
func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, contentType string, params url.Values) ([]byte, error) {
	sess, err := c.store.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	token := sess.AccessToken

	retried := false
	for {
		body, err := c.send(ctx, method, path, payload, contentType, params, token)
		if err == nil {
			return body, nil
		}
		if retried || !pkgErrors.IsUnauthorized(err) {
			return nil, err
		}
		retried = true

		newToken, refreshErr := c.refreshAccessToken(ctx)
		if refreshErr != nil {
			c.expireSession(ctx, refreshErr)
			// The caller sees the original rejection; the teardown happened
			// out of band.
			return nil, err
		}
		c.logger.Debugf(ctx, "access token refreshed, resubmitting %s %s", method, path)
		token = newToken
	}
}

// send performs one HTTP exchange. It does not touch the session and is also
// the transport for the refresh call itself.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, contentType string, params url.Values, token string) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if token != "" {
		req.Header.Set(headerAuthorization, bearerPrefix+token)
	}
	if contentType != "" {
		req.Header.Set(headerContentType, contentType)
	}
	req.Header.Set(headerRequestID, uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, pkgErrors.FromResponse(resp.StatusCode, data)
	}
	return data, nil
}
