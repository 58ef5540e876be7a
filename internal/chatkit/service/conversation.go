package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/domain"
	"github.com/aussiebroadwan/chatkit/internal/chatkit/store"
)

const (
	// MaxPayloadBytes caps a stored conversation payload.
	MaxPayloadBytes = 256 * 1024

	// MaxConversationIDLen caps client-chosen conversation ids.
	MaxConversationIDLen = 128

	defaultListLimit = 50
	maxListLimit     = 200
)

var (
	ErrInvalidConversationID = errors.New("invalid_conversation_id")
	ErrPayloadTooLarge       = errors.New("payload_too_large")
	ErrConversationTaken     = errors.New("conversation_taken")
	ErrNotFound              = errors.New("not_found")
)

// ConversationService stores opaque conversation payloads keyed by a
// client-chosen id, scoped to the owning subject. Payloads are never
// inspected; the service only enforces ownership and size.
type ConversationService struct {
	Store store.Store
}

// Save creates or replaces the subject's conversation payload.
func (s *ConversationService) Save(ctx context.Context, subject, id string, payload []byte) error {
	if err := validateConversationID(id); err != nil {
		return err
	}
	if len(payload) == 0 {
		return ErrInvalidRequest
	}
	if len(payload) > MaxPayloadBytes {
		return ErrPayloadTooLarge
	}

	err := s.Store.Conversations().Upsert(ctx, domain.Conversation{
		ID:      id,
		Subject: subject,
		Payload: payload,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return ErrConversationTaken
	}
	return err
}

// Get returns the subject's conversation. Ids owned by someone else look
// identical to ids that never existed.
func (s *ConversationService) Get(ctx context.Context, subject, id string) (domain.Conversation, error) {
	if err := validateConversationID(id); err != nil {
		return domain.Conversation{}, err
	}

	c, err := s.Store.Conversations().Get(ctx, id, subject)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Conversation{}, ErrNotFound
	}
	return c, err
}

// List returns the subject's conversations newest-updated first. A limit
// outside [1, maxListLimit] falls back to the default.
func (s *ConversationService) List(ctx context.Context, subject string, limit int) ([]domain.ConversationSummary, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	return s.Store.Conversations().List(ctx, subject, limit)
}

// Delete removes the subject's conversation.
func (s *ConversationService) Delete(ctx context.Context, subject, id string) error {
	if err := validateConversationID(id); err != nil {
		return err
	}

	err := s.Store.Conversations().Delete(ctx, id, subject)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// validateConversationID keeps ids path- and log-safe: printable, no
// whitespace, bounded length.
func validateConversationID(id string) error {
	if id == "" || len(id) > MaxConversationIDLen {
		return ErrInvalidConversationID
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return ErrInvalidConversationID
		}
	}
	if strings.ContainsAny(id, "/\\") {
		return ErrInvalidConversationID
	}
	return nil
}
