package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConversationSaveGetRoundTrip(t *testing.T) {
	t.Parallel()

	svc := &ConversationService{Store: newTestStore(t)}
	ctx := t.Context()

	payload := []byte(`{"title":"lunch plans","messages":[{"role":"user","text":"hi"}]}`)
	require.NoError(t, svc.Save(ctx, "user_42", "conv-1", payload))

	got, err := svc.Get(ctx, "user_42", "conv-1")
	require.NoError(t, err)
	require.Equal(t, "conv-1", got.ID)
	require.Equal(t, "user_42", got.Subject)
	require.Equal(t, payload, got.Payload)
	require.False(t, got.CreatedAt.IsZero())
}

func TestConversationSaveReplacesPayload(t *testing.T) {
	t.Parallel()

	svc := &ConversationService{Store: newTestStore(t)}
	ctx := t.Context()

	require.NoError(t, svc.Save(ctx, "user_42", "conv-1", []byte(`{"v":1}`)))
	require.NoError(t, svc.Save(ctx, "user_42", "conv-1", []byte(`{"v":2}`)))

	got, err := svc.Get(ctx, "user_42", "conv-1")
	require.NoError(t, err)
	require.JSONEq(t, `{"v":2}`, string(got.Payload))
}

func TestConversationOwnership(t *testing.T) {
	t.Parallel()

	svc := &ConversationService{Store: newTestStore(t)}
	ctx := t.Context()

	require.NoError(t, svc.Save(ctx, "user_42", "conv-1", []byte(`{}`)))

	t.Run("id cannot be hijacked by another subject", func(t *testing.T) {
		err := svc.Save(ctx, "user_43", "conv-1", []byte(`{"stolen":true}`))
		require.ErrorIs(t, err, ErrConversationTaken)
	})

	t.Run("foreign conversations read as not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "user_43", "conv-1")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("foreign conversations cannot be deleted", func(t *testing.T) {
		err := svc.Delete(ctx, "user_43", "conv-1")
		require.ErrorIs(t, err, ErrNotFound)

		_, err = svc.Get(ctx, "user_42", "conv-1")
		require.NoError(t, err)
	})
}

func TestConversationList(t *testing.T) {
	t.Parallel()

	svc := &ConversationService{Store: newTestStore(t)}
	ctx := t.Context()

	require.NoError(t, svc.Save(ctx, "user_42", "conv-a", []byte(`{}`)))
	require.NoError(t, svc.Save(ctx, "user_42", "conv-b", []byte(`{}`)))
	require.NoError(t, svc.Save(ctx, "user_43", "conv-c", []byte(`{}`)))

	list, err := svc.List(ctx, "user_42", 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, s := range list {
		require.NotEqual(t, "conv-c", s.ID, "must not leak other subjects' conversations")
	}
}

func TestConversationDelete(t *testing.T) {
	t.Parallel()

	svc := &ConversationService{Store: newTestStore(t)}
	ctx := t.Context()

	require.NoError(t, svc.Save(ctx, "user_42", "conv-1", []byte(`{}`)))
	require.NoError(t, svc.Delete(ctx, "user_42", "conv-1"))

	_, err := svc.Get(ctx, "user_42", "conv-1")
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "user_42", "conv-1"), ErrNotFound)
}

func TestConversationValidation(t *testing.T) {
	t.Parallel()

	svc := &ConversationService{Store: newTestStore(t)}
	ctx := t.Context()

	t.Run("empty id", func(t *testing.T) {
		require.ErrorIs(t, svc.Save(ctx, "user_42", "", []byte(`{}`)), ErrInvalidConversationID)
	})

	t.Run("overlong id", func(t *testing.T) {
		id := strings.Repeat("x", MaxConversationIDLen+1)
		require.ErrorIs(t, svc.Save(ctx, "user_42", id, []byte(`{}`)), ErrInvalidConversationID)
	})

	t.Run("id with path separators", func(t *testing.T) {
		require.ErrorIs(t, svc.Save(ctx, "user_42", "a/b", []byte(`{}`)), ErrInvalidConversationID)
	})

	t.Run("id with whitespace", func(t *testing.T) {
		require.ErrorIs(t, svc.Save(ctx, "user_42", "a b", []byte(`{}`)), ErrInvalidConversationID)
	})

	t.Run("empty payload", func(t *testing.T) {
		require.ErrorIs(t, svc.Save(ctx, "user_42", "conv-1", nil), ErrInvalidRequest)
	})

	t.Run("oversized payload", func(t *testing.T) {
		big := make([]byte, MaxPayloadBytes+1)
		require.ErrorIs(t, svc.Save(ctx, "user_42", "conv-1", big), ErrPayloadTooLarge)
	})
}
