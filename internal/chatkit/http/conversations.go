package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/service"
	"github.com/aussiebroadwan/chatkit/pkg/chatkitsdk"
	"github.com/aussiebroadwan/chatkit/pkg/httpx"
	"github.com/aussiebroadwan/chatkit/pkg/slogx"
)

// ConversationsHandler serves the /v1/conversations endpoints. Payloads
// are opaque JSON blobs; the handler only checks they parse as JSON so
// garbage can't be stored and replayed to clients.
type ConversationsHandler struct {
	ConversationService *service.ConversationService
}

// HandlePut godoc
//
//	@Summary		Store Conversation
//	@Description	Creates or replaces the conversation payload for the authenticated subject.
//	@Description	The body is stored as-is and never inspected beyond JSON well-formedness.
//	@Tags			Conversations
//	@Accept			json
//	@Param			id	path	string	true	"Conversation ID"
//	@Security		SessionAuth
//	@Success		204
//	@Failure		400	{object}	chatkitsdk.ErrorResponse
//	@Failure		401	{object}	chatkitsdk.ErrorResponse
//	@Failure		409	{object}	chatkitsdk.ErrorResponse	"conversation id owned by another user"
//	@Failure		413	{object}	chatkitsdk.ErrorResponse
//	@Router			/v1/conversations/{id} [put].
func (h *ConversationsHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	subject := httpx.SubjectFromCtx(r.Context())
	id := r.PathValue("id")

	r.Body = http.MaxBytesReader(w, r.Body, service.MaxPayloadBytes+1)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		chatkitsdk.ErrPayloadTooLarge.WriteError(w)
		return
	}
	if !json.Valid(payload) {
		chatkitsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	if err := h.ConversationService.Save(r.Context(), subject, id, payload); err != nil {
		writeConversationError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGet godoc
//
//	@Summary	Fetch Conversation
//	@Tags		Conversations
//	@Produce	json
//	@Param		id	path	string	true	"Conversation ID"
//	@Security	SessionAuth
//	@Success	200	{object}	chatkitsdk.ConversationResponse
//	@Failure	401	{object}	chatkitsdk.ErrorResponse
//	@Failure	404	{object}	chatkitsdk.ErrorResponse
//	@Router		/v1/conversations/{id} [get].
func (h *ConversationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	subject := httpx.SubjectFromCtx(r.Context())
	id := r.PathValue("id")

	c, err := h.ConversationService.Get(r.Context(), subject, id)
	if err != nil {
		writeConversationError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chatkitsdk.ConversationResponse{
		ID:        c.ID,
		Payload:   json.RawMessage(c.Payload),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	})
}

// HandleList godoc
//
//	@Summary	List Conversations
//	@Description	Returns the authenticated subject's conversations newest-updated first, without payloads.
//	@Tags		Conversations
//	@Produce	json
//	@Param		limit	query	int	false	"Maximum results (default 50, max 200)"
//	@Security	SessionAuth
//	@Success	200	{object}	chatkitsdk.ConversationListResponse
//	@Failure	401	{object}	chatkitsdk.ErrorResponse
//	@Router		/v1/conversations [get].
func (h *ConversationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	subject := httpx.SubjectFromCtx(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	list, err := h.ConversationService.List(r.Context(), subject, limit)
	if err != nil {
		writeConversationError(w, r, err)
		return
	}

	resp := chatkitsdk.ConversationListResponse{
		Conversations: make([]chatkitsdk.ConversationSummary, 0, len(list)),
	}
	for _, s := range list {
		resp.Conversations = append(resp.Conversations, chatkitsdk.ConversationSummary{
			ID:        s.ID,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleDelete godoc
//
//	@Summary	Delete Conversation
//	@Tags		Conversations
//	@Param		id	path	string	true	"Conversation ID"
//	@Security	SessionAuth
//	@Success	204
//	@Failure	401	{object}	chatkitsdk.ErrorResponse
//	@Failure	404	{object}	chatkitsdk.ErrorResponse
//	@Router		/v1/conversations/{id} [delete].
func (h *ConversationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	subject := httpx.SubjectFromCtx(r.Context())
	id := r.PathValue("id")

	if err := h.ConversationService.Delete(r.Context(), subject, id); err != nil {
		writeConversationError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeConversationError maps service errors onto the wire taxonomy.
func writeConversationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidConversationID), errors.Is(err, service.ErrInvalidRequest):
		chatkitsdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrPayloadTooLarge):
		chatkitsdk.ErrPayloadTooLarge.WriteError(w)
	case errors.Is(err, service.ErrConversationTaken):
		chatkitsdk.ErrConversationTaken.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		chatkitsdk.ErrNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("conversation operation failed", "err", err)
		chatkitsdk.ErrServerError.WriteError(w)
	}
}
