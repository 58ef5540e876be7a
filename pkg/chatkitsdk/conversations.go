package chatkitsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// PutConversation stores payload (raw JSON) under the given conversation id.
func (s *Session) PutConversation(ctx context.Context, id string, payload json.RawMessage) error {
	return s.doJSON(ctx, http.MethodPut, "/v1/conversations/"+url.PathEscape(id), payload, nil)
}

// GetConversation fetches a stored conversation with its payload.
func (s *Session) GetConversation(ctx context.Context, id string) (*ConversationResponse, error) {
	var resp ConversationResponse
	if err := s.doJSON(ctx, http.MethodGet, "/v1/conversations/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListConversations returns the session subject's conversations, newest
// first. limit <= 0 uses the server default.
func (s *Session) ListConversations(ctx context.Context, limit int) ([]ConversationSummary, error) {
	path := "/v1/conversations"
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	var resp ConversationListResponse
	if err := s.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Conversations, nil
}

// DeleteConversation removes a stored conversation.
func (s *Session) DeleteConversation(ctx context.Context, id string) error {
	return s.doJSON(ctx, http.MethodDelete, "/v1/conversations/"+url.PathEscape(id), nil, nil)
}
