package chatkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/chatkit/pkg/chatkitsdk"
)

// TestRateLimitSessionEndpoint verifies POST /v1/session is rate limited.
// Token issuance carries the strict profile (5 req/min) since it is the
// doorway into everything else.
func TestRateLimitSessionEndpoint(t *testing.T) {
	baseURL, cleanup := setupChatkitContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := chatkitsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	// Burn through the strict budget with bad provider tokens; the 6th
	// request should come back 429 instead of 401.
	var lastErr error
	for i := range 6 {
		_, err := client.CreateSession(ctx, "not-a-valid-provider-token")
		if i < 5 {
			require.Error(t, err, "Bad provider token should fail")
			requireAPIErrorCode(t, err, chatkitsdk.ErrorCodeUnauthenticated)
		} else {
			lastErr = err
		}
	}

	require.Error(t, lastErr)
	requireAPIErrorCode(t, lastErr, chatkitsdk.ErrorCodeRateLimited)
	t.Logf("Successfully rate limited after 5 requests to /v1/session")
}
