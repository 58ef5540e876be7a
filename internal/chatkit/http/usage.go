package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/domain"
	"github.com/aussiebroadwan/chatkit/internal/chatkit/service"
	"github.com/aussiebroadwan/chatkit/pkg/chatkitsdk"
	"github.com/aussiebroadwan/chatkit/pkg/httpx"
	"github.com/aussiebroadwan/chatkit/pkg/slogx"
)

// UsageHandler serves the /v1/usage endpoints.
type UsageHandler struct {
	UsageService *service.UsageService
}

// HandleRecord godoc
//
//	@Summary		Record Usage Event
//	@Description	Records a chat activity event (message, completion, tool call) for the
//	@Description	authenticated subject. The event id is assigned server-side.
//	@Tags			Usage
//	@Accept			json
//	@Produce		json
//	@Param			event	body	chatkitsdk.UsageEventRequest	true	"usage event"
//	@Security		SessionAuth
//	@Success		201	{object}	chatkitsdk.UsageEventResponse
//	@Failure		400	{object}	chatkitsdk.ErrorResponse
//	@Failure		401	{object}	chatkitsdk.ErrorResponse
//	@Router			/v1/usage/events [post].
func (h *UsageHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	subject := httpx.SubjectFromCtx(r.Context())

	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		chatkitsdk.ErrInvalidContentType.WriteError(w)
		return
	}

	var req chatkitsdk.UsageEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		chatkitsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	event, err := h.UsageService.Record(r.Context(), subject, domain.UsageEvent{
		ConversationID: req.ConversationID,
		Kind:           req.Kind,
		Model:          req.Model,
		TokensIn:       req.TokensIn,
		TokensOut:      req.TokensOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, service.ErrInvalidConversationID):
			chatkitsdk.ErrInvalidRequest.WriteError(w)
		default:
			slogx.FromContext(r.Context()).Error("usage record failed", "err", err)
			chatkitsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, chatkitsdk.UsageEventResponse{
		ID:             event.ID,
		ConversationID: event.ConversationID,
		Kind:           event.Kind,
		Model:          event.Model,
		TokensIn:       event.TokensIn,
		TokensOut:      event.TokensOut,
		CreatedAt:      event.CreatedAt,
	})
}

// HandleSummary godoc
//
//	@Summary		Usage Summary
//	@Description	Aggregates the authenticated subject's usage over the trailing window.
//	@Tags			Usage
//	@Produce		json
//	@Param			days	query	int	false	"Window in days (default 30, max 365)"
//	@Security		SessionAuth
//	@Success		200	{object}	chatkitsdk.UsageSummaryResponse
//	@Failure		401	{object}	chatkitsdk.ErrorResponse
//	@Router			/v1/usage/summary [get].
func (h *UsageHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	subject := httpx.SubjectFromCtx(r.Context())

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			days = n
		}
	}

	summary, err := h.UsageService.Summary(r.Context(), subject, days)
	if err != nil {
		slogx.FromContext(r.Context()).Error("usage summary failed", "err", err)
		chatkitsdk.ErrServerError.WriteError(w)
		return
	}

	resp := chatkitsdk.UsageSummaryResponse{
		Subject:   summary.Subject,
		Since:     summary.Since,
		Events:    summary.Events,
		TokensIn:  summary.TokensIn,
		TokensOut: summary.TokensOut,
	}
	for _, m := range summary.ByModel {
		resp.ByModel = append(resp.ByModel, chatkitsdk.ModelUsage{
			Model:     m.Model,
			Events:    m.Events,
			TokensIn:  m.TokensIn,
			TokensOut: m.TokensOut,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
