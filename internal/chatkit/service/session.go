package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/domain"
	"github.com/aussiebroadwan/chatkit/pkg/cryptox"
	"github.com/aussiebroadwan/chatkit/pkg/idp"
	"github.com/aussiebroadwan/chatkit/pkg/sessiontoken"
	"github.com/aussiebroadwan/chatkit/pkg/slogx"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidRequest  = errors.New("invalid_request")
)

// SessionService exchanges verified identity-provider credentials for
// chatkit session tokens, and answers advisory questions about presented
// tokens. It is stateless: nothing about a session is ever persisted.
type SessionService struct {
	Codec *sessiontoken.Codec
	IdP   *idp.Verifier
}

// CreateSession verifies the provider token and issues a session token
// bound to the provider's subject. Any provider-side rejection collapses
// into ErrUnauthenticated.
func (s *SessionService) CreateSession(ctx context.Context, providerToken string) (domain.Session, error) {
	l := slogx.FromContext(ctx)

	claims, err := s.IdP.Verify(ctx, providerToken)
	if err != nil {
		l.Info("identity provider rejected token", "err", err)
		return domain.Session{}, ErrUnauthenticated
	}

	token, expiresAt, err := s.Codec.Issue(claims.Subject)
	if err != nil {
		return domain.Session{}, err
	}

	l.Info("session issued",
		"subject", claims.Subject,
		"expires_at", expiresAt,
		"token_fp", cryptox.FingerprintToken(token),
	)

	return domain.Session{
		Token:     token,
		Subject:   claims.Subject,
		ExpiresAt: expiresAt,
	}, nil
}

// Inspect reports the advisory status of a presented token for a claimed
// subject. It never errors: malformed input is a negative status, and the
// reason is diagnostic only.
func (s *SessionService) Inspect(ctx context.Context, token, subject string) domain.SessionStatus {
	res := s.Codec.Validate(token, subject)

	status := domain.SessionStatus{
		Valid:  res.Valid,
		Reason: string(res.Reason),
	}

	if expiry, ok := s.Codec.PeekExpiry(token); ok {
		status.ExpiresAt = &expiry
	}
	status.NearExpiry = s.Codec.IsNearExpiry(token)

	return status
}
