package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres if we ever outgrow it) implement this. Sub-repositories keep
// concerns tidy and let services depend on exactly what they touch.
type Store interface {
	Conversations() Conversations
	UsageEvents() UsageEvents

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn
	// errors and committing otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Same repos, plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Conversations interface {
	// Upsert replaces the payload for (id, subject), creating the row on
	// first write. Returns ErrAlreadyExists when id is owned by another
	// subject, so ids cannot be hijacked across users.
	Upsert(ctx context.Context, c domain.Conversation) error

	// Get returns the conversation for id iff it is owned by subject.
	// Foreign ownership reports ErrNotFound, never a distinct error.
	Get(ctx context.Context, id, subject string) (domain.Conversation, error)

	// List returns the subject's conversations newest-updated first,
	// without payloads.
	List(ctx context.Context, subject string, limit int) ([]domain.ConversationSummary, error)

	// Delete removes the conversation iff owned by subject.
	Delete(ctx context.Context, id, subject string) error

	// DeleteIdleBefore removes conversations not updated since cutoff.
	// Housekeeping; returns the number of rows removed.
	DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type UsageEvents interface {
	// Create inserts a new usage event (id is provided by app via ULID).
	Create(ctx context.Context, e domain.UsageEvent) error

	// Summarize aggregates events for subject recorded at or after since.
	Summarize(ctx context.Context, subject string, since time.Time) (domain.UsageSummary, error)

	// DeleteBefore removes events recorded before cutoff. Housekeeping;
	// returns the number of rows removed.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
