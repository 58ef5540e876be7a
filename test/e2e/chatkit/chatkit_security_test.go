package chatkit_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/chatkit/pkg/chatkitsdk"
)

// TestAuthnRejections verifies the authenticated surface turns away every
// broken credential combination with a uniform 401.
func TestAuthnRejections(t *testing.T) {
	baseURL, cleanup := setupChatkitContainer(t)
	defer cleanup()

	client := chatkitsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	session := createSession(t, client, "user_42")
	require.NoError(t, session.PutConversation(ctx, "conv-001", json.RawMessage(`{}`)))

	t.Run("missing token", func(t *testing.T) {
		anon := client.NewSessionFromToken("", session.UserID, session.ExpiresAt)
		_, err := anon.ListConversations(ctx, 0)
		requireAPIErrorCode(t, err, chatkitsdk.ErrorCodeUnauthenticated)
	})

	t.Run("token bound to another user", func(t *testing.T) {
		stolen := client.NewSessionFromToken(session.Token, "mallory", session.ExpiresAt)
		_, err := stolen.ListConversations(ctx, 0)
		requireAPIErrorCode(t, err, chatkitsdk.ErrorCodeUnauthenticated)
	})

	t.Run("tampered token", func(t *testing.T) {
		tampered := session.Token[:len(session.Token)-2] + "zz"
		forged := client.NewSessionFromToken(tampered, session.UserID, session.ExpiresAt)
		_, err := forged.GetConversation(ctx, "conv-001")
		requireAPIErrorCode(t, err, chatkitsdk.ErrorCodeUnauthenticated)
	})

	t.Run("provider token is not a session token", func(t *testing.T) {
		// An IdP JWT must never pass where a chatkit session token is
		// expected, even though the service trusts its signer elsewhere.
		providerToken := mintProviderToken(t, "user_42")
		confused := client.NewSessionFromToken(providerToken, "user_42", session.ExpiresAt)
		_, err := confused.ListConversations(ctx, 0)
		requireAPIErrorCode(t, err, chatkitsdk.ErrorCodeUnauthenticated)
	})
}
