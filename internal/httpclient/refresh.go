package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const refreshPath = "/auth/refresh"

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// refreshAccessToken mints a new access token from the stored refresh
// credential and persists it. Concurrent callers collapse into a single
// backend call and share its outcome.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	token, err, _ := c.refresh.Do(refreshPath, func() (any, error) {
		sess, err := c.store.Get()
		if err != nil {
			return nil, fmt.Errorf("failed to read session: %w", err)
		}
		if sess.RefreshToken == "" {
			return nil, ErrNoRefreshToken
		}

		payload, err := json.Marshal(refreshRequest{RefreshToken: sess.RefreshToken})
		if err != nil {
			return nil, fmt.Errorf("failed to encode refresh request: %w", err)
		}

		// Dedicated call outside the interception path: a 401 here is final.
		body, err := c.send(ctx, http.MethodPost, refreshPath, payload, contentTypeJSON, nil, "")
		if err != nil {
			return nil, fmt.Errorf("refresh rejected: %w", err)
		}

		var out refreshResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("failed to decode refresh response: %w", err)
		}
		if out.AccessToken == "" {
			return nil, ErrEmptyRefreshResponse
		}
		if err := c.store.SetAccessToken(out.AccessToken); err != nil {
			return nil, fmt.Errorf("failed to persist refreshed token: %w", err)
		}
		return out.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// expireSession tears the session down after an unrecoverable refresh
// failure and hands control back to the login entry point.
func (c *Client) expireSession(ctx context.Context, cause error) {
	c.logger.Warnf(ctx, "session expired, re-authentication required: %v", cause)
	if err := c.store.Clear(); err != nil {
		c.logger.Errorf(ctx, "failed to clear session store: %v", err)
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}
