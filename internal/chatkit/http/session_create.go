package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/service"
	"github.com/aussiebroadwan/chatkit/pkg/chatkitsdk"
	"github.com/aussiebroadwan/chatkit/pkg/httpx"
)

// SessionCreateHandler serves POST /v1/session: exchanges a verified
// identity-provider bearer token for a chatkit session token.
type SessionCreateHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Create Session
//	@Description	Exchanges an identity-provider JWT (Bearer) for a short-lived chatkit session token
//	@Description	bound to the provider-verified subject. The token is stateless; nothing is persisted.
//	@Tags			Session
//	@Produce		json
//	@Param			Authorization	header		string							true	"Identity provider JWT. Format: Bearer {token}"
//	@Success		200				{object}	chatkitsdk.SessionResponse		"token, expires_at, subject"
//	@Failure		401				{object}	chatkitsdk.ErrorResponse		"error, error_description"
//	@Header			200				{string}	Cache-Control					"no-store"
//	@Router			/v1/session [post].
func (h *SessionCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		chatkitsdk.ErrUnauthenticated.WriteError(w)
		return
	}
	providerToken := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

	session, err := h.SessionService.CreateSession(r.Context(), providerToken)
	if err != nil {
		// Every provider-side failure is the same 401; details are logged
		// by the service, not exposed to the caller.
		chatkitsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chatkitsdk.SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Subject:   session.Subject,
	})
}
