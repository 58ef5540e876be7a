package domain

import "time"

// Conversation is an opaque payload stored against a client-chosen id.
// The service never inspects the payload; it belongs to exactly one
// subject and is only ever replaced wholesale.
type Conversation struct {
	ID        string
	Subject   string
	Payload   []byte // raw JSON, opaque to the service
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConversationSummary is the listing view: everything except the payload.
type ConversationSummary struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}
