// Package domain holds the entities the chatkit service persists and
// passes between layers. No behaviour lives here, only shapes.
package domain

import "time"

// Session is an issued credential for a subject. Sessions are stateless:
// nothing is persisted at issuance and a session is never mutated, only
// re-evaluated against the clock on each request.
type Session struct {
	Token     string
	Subject   string
	ExpiresAt time.Time
}

// SessionStatus is the advisory view of a presented token, as returned by
// the verify endpoint. Reason is diagnostic only; callers must not branch
// behaviour on it.
type SessionStatus struct {
	Valid      bool
	Reason     string
	ExpiresAt  *time.Time
	NearExpiry bool
}
