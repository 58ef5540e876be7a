package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/chatkit/pkg/httpx"
	"github.com/aussiebroadwan/chatkit/pkg/sessiontoken"
	"github.com/stretchr/testify/require"
)

func TestSessionAuthnMiddleware(t *testing.T) {
	codec := sessiontoken.New("authn-test-secret")
	token, _, err := codec.Issue("user_42")
	require.NoError(t, err)

	var gotSubject string
	handler := httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSubject = httpx.SubjectFromCtx(r.Context())
			w.WriteHeader(http.StatusOK)
		}),
		httpx.SessionAuthnMiddleware(codec),
	)

	do := func(authz, user string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		if user != "" {
			req.Header.Set(httpx.UserHeader, user)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token passes and injects subject", func(t *testing.T) {
		gotSubject = ""
		rec := do("Bearer "+token, "user_42")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user_42", gotSubject)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		rec := do("", "user_42")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("missing user header", func(t *testing.T) {
		rec := do("Bearer "+token, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token bound to another subject", func(t *testing.T) {
		rec := do("Bearer "+token, "user_43")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		past := sessiontoken.New("authn-test-secret",
			sessiontoken.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }),
		)
		stale, _, err := past.Issue("user_42")
		require.NoError(t, err)

		rec := do("Bearer "+stale, "user_42")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := do("Bearer garbage", "user_42")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
