package chatkitsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the chatkit session service. It covers the
// unauthenticated surface; CreateSession upgrades to a Session for the
// authenticated endpoints.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new chatkit service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session is an authenticated handle bound to an issued token.
type Session struct {
	client *SDKClient

	// Token is the raw chatkit session token.
	Token string
	// UserID is the subject the token is bound to.
	UserID string
	// ExpiresAt is when the token stops being accepted.
	ExpiresAt time.Time
}

// NewSessionFromToken rebuilds a Session from a previously issued token,
// e.g. one stored client-side across restarts.
func (c *SDKClient) NewSessionFromToken(token, userID string, expiresAt time.Time) *Session {
	return &Session{client: c, Token: token, UserID: userID, ExpiresAt: expiresAt}
}

func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doJSON performs a request with an optional JSON body and decodes a JSON
// response into out (when out is non-nil). Non-2xx responses come back as
// *APIError.
func (c *SDKClient) doJSON(
	ctx context.Context,
	method, path string,
	body any,
	headers map[string]string,
	out any,
) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// doJSON on a Session attaches the bearer token and user binding header.
func (s *Session) doJSON(ctx context.Context, method, path string, body, out any) error {
	return s.client.doJSON(ctx, method, path, body, map[string]string{
		"Authorization":  "Bearer " + s.Token,
		"X-Chatkit-User": s.UserID,
	}, out)
}
