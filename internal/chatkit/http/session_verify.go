package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/service"
	"github.com/aussiebroadwan/chatkit/pkg/chatkitsdk"
	"github.com/aussiebroadwan/chatkit/pkg/httpx"
)

// SessionVerifyHandler serves POST /v1/session/verify: advisory token
// introspection for UI warnings. Never an authorization decision.
type SessionVerifyHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Verify Session (advisory)
//	@Description	Reports whether a token/user pair would validate, the embedded expiry, and whether
//	@Description	the token is near expiry. Malformed tokens yield valid=false, never an error status.
//	@Description	The reason field is diagnostic only; clients must treat all invalid results the same.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		chatkitsdk.VerifySessionRequest		true	"token and user_id"
//	@Success		200		{object}	chatkitsdk.SessionStatusResponse	"valid, reason, expires_at, near_expiry"
//	@Failure		400		{object}	chatkitsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/session/verify [post].
func (h *SessionVerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		chatkitsdk.ErrInvalidContentType.WriteError(w)
		return
	}

	var req chatkitsdk.VerifySessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		chatkitsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}
	if req.UserID == "" {
		chatkitsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	status := h.SessionService.Inspect(r.Context(), req.Token, req.UserID)

	httpx.WriteJSON(w, http.StatusOK, chatkitsdk.SessionStatusResponse{
		Valid:      status.Valid,
		Reason:     status.Reason,
		ExpiresAt:  status.ExpiresAt,
		NearExpiry: status.NearExpiry,
	})
}
