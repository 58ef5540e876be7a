package chatkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/chatkit/pkg/chatkitsdk"
)

// TestUsageRecordingAndSummary verifies events aggregate per subject and
// per model, heaviest model first.
func TestUsageRecordingAndSummary(t *testing.T) {
	baseURL, cleanup := setupChatkitContainer(t)
	defer cleanup()

	client := chatkitsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	session := createSession(t, client, "user_42")

	events := []chatkitsdk.UsageEventRequest{
		{Kind: "completion", Model: "sonnet", TokensIn: 500, TokensOut: 1200},
		{Kind: "completion", Model: "sonnet", TokensIn: 300, TokensOut: 800},
		{Kind: "completion", Model: "haiku", TokensIn: 100, TokensOut: 200},
	}
	for _, event := range events {
		resp, err := session.RecordUsage(ctx, event)
		require.NoError(t, err)
		require.NotEmpty(t, resp.ID, "Recorded event should get an id")
		require.Equal(t, event.Model, resp.Model)
	}

	summary, err := session.GetUsageSummary(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, "user_42", summary.Subject)
	require.Equal(t, int64(3), summary.Events)
	require.Equal(t, int64(900), summary.TokensIn)
	require.Equal(t, int64(2200), summary.TokensOut)

	require.Len(t, summary.ByModel, 2)
	require.Equal(t, "sonnet", summary.ByModel[0].Model, "Heaviest model should lead")
	require.Equal(t, int64(2), summary.ByModel[0].Events)
	require.Equal(t, int64(800), summary.ByModel[0].TokensIn)
	require.Equal(t, int64(2000), summary.ByModel[0].TokensOut)
	require.Equal(t, "haiku", summary.ByModel[1].Model)
}

// TestUsageIsPerSubject verifies one subject's events never leak into
// another subject's summary.
func TestUsageIsPerSubject(t *testing.T) {
	baseURL, cleanup := setupChatkitContainer(t)
	defer cleanup()

	client := chatkitsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	alice := createSession(t, client, "alice")
	bob := createSession(t, client, "bob")

	_, err := alice.RecordUsage(ctx, chatkitsdk.UsageEventRequest{Kind: "completion", Model: "sonnet", TokensIn: 10, TokensOut: 20})
	require.NoError(t, err)

	summary, err := bob.GetUsageSummary(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), summary.Events)
	require.Empty(t, summary.ByModel)
}

// TestUsageValidation verifies the record endpoint rejects events it
// cannot attribute.
func TestUsageValidation(t *testing.T) {
	baseURL, cleanup := setupChatkitContainer(t)
	defer cleanup()

	client := chatkitsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	session := createSession(t, client, "user_42")

	t.Run("missing kind", func(t *testing.T) {
		_, err := session.RecordUsage(ctx, chatkitsdk.UsageEventRequest{Model: "sonnet", TokensIn: 1})
		requireAPIErrorCode(t, err, chatkitsdk.ErrorCodeInvalidRequest)
	})

	t.Run("negative token counts", func(t *testing.T) {
		_, err := session.RecordUsage(ctx, chatkitsdk.UsageEventRequest{Kind: "completion", TokensIn: -1})
		requireAPIErrorCode(t, err, chatkitsdk.ErrorCodeInvalidRequest)
	})
}
