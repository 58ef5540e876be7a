package chatkitsdk

import (
	"context"
	"fmt"
	"net/http"
)

// RecordUsage submits a usage event for the session subject.
func (s *Session) RecordUsage(ctx context.Context, event UsageEventRequest) (*UsageEventResponse, error) {
	var resp UsageEventResponse
	if err := s.doJSON(ctx, http.MethodPost, "/v1/usage/events", event, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetUsageSummary fetches the subject's aggregate usage over the trailing
// window. days <= 0 uses the server default.
func (s *Session) GetUsageSummary(ctx context.Context, days int) (*UsageSummaryResponse, error) {
	path := "/v1/usage/summary"
	if days > 0 {
		path += fmt.Sprintf("?days=%d", days)
	}

	var resp UsageSummaryResponse
	if err := s.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
