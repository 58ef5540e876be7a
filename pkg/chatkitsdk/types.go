package chatkitsdk

import (
	"encoding/json"
	"time"
)

// SessionResponse is returned by POST /v1/session.
type SessionResponse struct {
	// Token is the opaque chatkit session token.
	Token string `json:"token"`

	// ExpiresAt is the token expiry as an ISO-8601 timestamp.
	ExpiresAt time.Time `json:"expires_at"`

	// Subject the token was issued for.
	Subject string `json:"subject"`
}

// SessionStatusResponse is the advisory result of POST /v1/session/verify.
// Reason is diagnostic only: treat any Valid=false uniformly.
type SessionStatusResponse struct {
	Valid      bool       `json:"valid"`
	Reason     string     `json:"reason,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	NearExpiry bool       `json:"near_expiry"`
}

// VerifySessionRequest is the body of POST /v1/session/verify.
type VerifySessionRequest struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// ConversationResponse is a stored conversation with its payload.
type ConversationResponse struct {
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ConversationSummary is the payload-free listing view.
type ConversationSummary struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConversationListResponse is returned by GET /v1/conversations.
type ConversationListResponse struct {
	Conversations []ConversationSummary `json:"conversations"`
}

// UsageEventRequest is the body of POST /v1/usage/events.
type UsageEventRequest struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Kind           string `json:"kind"`
	Model          string `json:"model,omitempty"`
	TokensIn       int64  `json:"tokens_in"`
	TokensOut      int64  `json:"tokens_out"`
}

// UsageEventResponse echoes a recorded event with its assigned id.
type UsageEventResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id,omitempty"`
	Kind           string    `json:"kind"`
	Model          string    `json:"model,omitempty"`
	TokensIn       int64     `json:"tokens_in"`
	TokensOut      int64     `json:"tokens_out"`
	CreatedAt      time.Time `json:"created_at"`
}

// ModelUsage is the per-model slice of a usage summary.
type ModelUsage struct {
	Model     string `json:"model"`
	Events    int64  `json:"events"`
	TokensIn  int64  `json:"tokens_in"`
	TokensOut int64  `json:"tokens_out"`
}

// UsageSummaryResponse is returned by GET /v1/usage/summary.
type UsageSummaryResponse struct {
	Subject   string       `json:"subject"`
	Since     time.Time    `json:"since"`
	Events    int64        `json:"events"`
	TokensIn  int64        `json:"tokens_in"`
	TokensOut int64        `json:"tokens_out"`
	ByModel   []ModelUsage `json:"by_model,omitempty"`
}

// HealthResponse is returned by /livez and /readyz (the latter includes
// Checks).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Codec indicates whether the session token codec has a secret loaded
	Codec string `json:"codec"`
}
