package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/chatkit/pkg/cryptox"
	"github.com/aussiebroadwan/chatkit/pkg/sessiontoken"
	"github.com/aussiebroadwan/chatkit/pkg/slogx"
)

// UserHeader carries the subject the presented session token must be bound
// to. The token alone is not enough: validation checks the embedded subject
// against this header, so a leaked token cannot be replayed as someone else.
const UserHeader = "X-Chatkit-User"

// SessionAuthnMiddleware authenticates requests against a session token
// codec. Every validation failure maps to the same 401; the codec reason is
// logged for diagnostics but never drives distinct client behaviour.
func SessionAuthnMiddleware(codec *sessiontoken.Codec) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			subject := strings.TrimSpace(r.Header.Get(UserHeader))
			if subject == "" {
				writeBearerError(w, "missing "+UserHeader+" header")
				return
			}

			res := codec.Validate(raw, subject)
			if !res.Valid {
				log.Warn("session token rejected",
					"reason", string(res.Reason),
					"token_fp", cryptox.FingerprintToken(raw),
				)
				writeBearerError(w, "session token rejected")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
