package chatkitsdk

import (
	"context"
	"net/http"
)

// CreateSession exchanges an identity-provider token for a chatkit session.
func (c *SDKClient) CreateSession(ctx context.Context, providerToken string) (*Session, error) {
	var resp SessionResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/session", nil, map[string]string{
		"Authorization": "Bearer " + providerToken,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &Session{
		client:    c,
		Token:     resp.Token,
		UserID:    resp.Subject,
		ExpiresAt: resp.ExpiresAt,
	}, nil
}

// VerifySession asks the service for an advisory status of a token/user
// pair. It never authenticates anything; use it for expiry warnings only.
func (c *SDKClient) VerifySession(ctx context.Context, token, userID string) (*SessionStatusResponse, error) {
	var resp SessionStatusResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/session/verify", VerifySessionRequest{
		Token:  token,
		UserID: userID,
	}, nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify reports the advisory status of this session's own token.
func (s *Session) Verify(ctx context.Context) (*SessionStatusResponse, error) {
	return s.client.VerifySession(ctx, s.Token, s.UserID)
}
