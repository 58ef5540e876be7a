package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/domain"
	"github.com/aussiebroadwan/chatkit/internal/chatkit/store"
)

type conversationsRepo struct {
	db dbtx
}

func (r *conversationsRepo) Upsert(ctx context.Context, c domain.Conversation) error {
	now := time.Now().UTC()

	// The WHERE on the conflict clause means an id owned by a different
	// subject updates nothing: 0 rows affected distinguishes "foreign
	// owner" from a successful insert or replace.
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO conversations (id, subject, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = excluded.updated_at
		WHERE conversations.subject = excluded.subject`,
		c.ID, c.Subject, c.Payload, now, now,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrAlreadyExists
	}
	return nil
}

func (r *conversationsRepo) Get(ctx context.Context, id, subject string) (domain.Conversation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, subject, payload, created_at, updated_at
		FROM conversations
		WHERE id = ? AND subject = ?`,
		id, subject,
	)

	var c domain.Conversation
	err := row.Scan(&c.ID, &c.Subject, &c.Payload, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Conversation{}, mapNotFound(err)
	}
	return c, nil
}

func (r *conversationsRepo) List(ctx context.Context, subject string, limit int) ([]domain.ConversationSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, updated_at
		FROM conversations
		WHERE subject = ?
		ORDER BY updated_at DESC
		LIMIT ?`,
		subject, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.ConversationSummary
	for rows.Next() {
		var s domain.ConversationSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *conversationsRepo) Delete(ctx context.Context, id, subject string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM conversations WHERE id = ? AND subject = ?`,
		id, subject,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *conversationsRepo) DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM conversations WHERE updated_at < ?`,
		cutoff.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
