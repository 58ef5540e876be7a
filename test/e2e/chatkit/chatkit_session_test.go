package chatkit_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/chatkit/pkg/chatkitsdk"
)

// TestCreateSession verifies a valid identity-provider token is exchanged
// for a chatkit session token bound to the provider's subject.
func TestCreateSession(t *testing.T) {
	baseURL, cleanup := setupChatkitContainer(t)
	defer cleanup()

	client := chatkitsdk.NewSDKClient(baseURL)
	session := createSession(t, client, "user_42")

	require.True(t, strings.HasPrefix(session.Token, "chatkit_user_42_"),
		"Token should carry the chatkit prefix and subject")
	require.True(t, session.ExpiresAt.After(time.Now()), "Token should not arrive expired")

	t.Logf("Issued session for %s expiring %s", session.UserID, session.ExpiresAt)
}

// TestCreateSessionRejectsBadProviderTokens verifies the session endpoint
// refuses anything the identity provider didn't sign.
func TestCreateSessionRejectsBadProviderTokens(t *testing.T) {
	baseURL, cleanup := setupChatkitContainer(t)
	defer cleanup()

	client := chatkitsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	t.Run("garbage token", func(t *testing.T) {
		_, err := client.CreateSession(ctx, "not-a-jwt")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unauthenticated")
	})

	t.Run("expired provider token", func(t *testing.T) {
		token := mintProviderTokenWithClaims(t, jwt.MapClaims{
			"iss": idpIssuer,
			"sub": "user_42",
			"aud": idpAudience,
			"iat": time.Now().Add(-time.Hour).Unix(),
			"exp": time.Now().Add(-30 * time.Minute).Unix(),
		})
		_, err := client.CreateSession(ctx, token)
		require.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token := mintProviderTokenWithClaims(t, jwt.MapClaims{
			"iss": "https://evil.example.com",
			"sub": "user_42",
			"aud": idpAudience,
			"iat": time.Now().Unix(),
			"exp": time.Now().Add(5 * time.Minute).Unix(),
		})
		_, err := client.CreateSession(ctx, token)
		require.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		token := mintProviderTokenWithClaims(t, jwt.MapClaims{
			"iss": idpIssuer,
			"aud": idpAudience,
			"iat": time.Now().Unix(),
			"exp": time.Now().Add(5 * time.Minute).Unix(),
		})
		_, err := client.CreateSession(ctx, token)
		require.Error(t, err)
	})
}

// TestVerifySession verifies the advisory verify endpoint reports token
// status without ever authenticating anything.
func TestVerifySession(t *testing.T) {
	baseURL, cleanup := setupChatkitContainer(t)
	defer cleanup()

	client := chatkitsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	session := createSession(t, client, "user_42")

	t.Run("valid token", func(t *testing.T) {
		status, err := session.Verify(ctx)
		require.NoError(t, err)
		require.True(t, status.Valid)
		require.Empty(t, status.Reason)
		require.NotNil(t, status.ExpiresAt)
	})

	t.Run("wrong user", func(t *testing.T) {
		status, err := client.VerifySession(ctx, session.Token, "someone_else")
		require.NoError(t, err)
		require.False(t, status.Valid)
		require.Equal(t, "user_mismatch", status.Reason)
	})

	t.Run("tampered signature", func(t *testing.T) {
		tampered := session.Token[:len(session.Token)-1]
		if strings.HasSuffix(session.Token, "0") {
			tampered += "1"
		} else {
			tampered += "0"
		}

		status, err := client.VerifySession(ctx, tampered, session.UserID)
		require.NoError(t, err)
		require.False(t, status.Valid)
		require.Equal(t, "invalid_signature", status.Reason)
	})

	t.Run("malformed token", func(t *testing.T) {
		status, err := client.VerifySession(ctx, "definitely-not-a-session-token", session.UserID)
		require.NoError(t, err)
		require.False(t, status.Valid)
		require.Equal(t, "invalid_format", status.Reason)
	})
}
