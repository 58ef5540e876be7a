package domain

import "time"

// UsageEvent is a single recorded unit of chat activity for a subject.
type UsageEvent struct {
	ID             string // ULID
	Subject        string
	ConversationID string // optional; empty when not tied to a conversation
	Kind           string // e.g. "message", "completion", "tool_call"
	Model          string // optional model identifier
	TokensIn       int64
	TokensOut      int64
	CreatedAt      time.Time
}

// UsageSummary aggregates a subject's events over a window.
type UsageSummary struct {
	Subject   string
	Since     time.Time
	Events    int64
	TokensIn  int64
	TokensOut int64
	ByModel   []ModelUsage
}

// ModelUsage is the per-model slice of a summary.
type ModelUsage struct {
	Model     string
	Events    int64
	TokensIn  int64
	TokensOut int64
}
