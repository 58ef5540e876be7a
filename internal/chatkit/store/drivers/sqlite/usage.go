package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/domain"
)

type usageEventsRepo struct {
	db dbtx
}

func (r *usageEventsRepo) Create(ctx context.Context, e domain.UsageEvent) error {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var conversationID sql.NullString
	if e.ConversationID != "" {
		conversationID = sql.NullString{String: e.ConversationID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO usage_events
			(id, subject, conversation_id, kind, model, tokens_in, tokens_out, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Subject, conversationID, e.Kind, e.Model, e.TokensIn, e.TokensOut, createdAt,
	)
	return err
}

func (r *usageEventsRepo) Summarize(ctx context.Context, subject string, since time.Time) (domain.UsageSummary, error) {
	summary := domain.UsageSummary{
		Subject: subject,
		Since:   since.UTC(),
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(tokens_in), 0),
		       COALESCE(SUM(tokens_out), 0)
		FROM usage_events
		WHERE subject = ? AND created_at >= ?`,
		subject, since.UTC(),
	)
	if err := row.Scan(&summary.Events, &summary.TokensIn, &summary.TokensOut); err != nil {
		return domain.UsageSummary{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT model,
		       COUNT(*),
		       COALESCE(SUM(tokens_in), 0),
		       COALESCE(SUM(tokens_out), 0)
		FROM usage_events
		WHERE subject = ? AND created_at >= ? AND model != ''
		GROUP BY model
		ORDER BY SUM(tokens_in) + SUM(tokens_out) DESC`,
		subject, since.UTC(),
	)
	if err != nil {
		return domain.UsageSummary{}, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var m domain.ModelUsage
		if err := rows.Scan(&m.Model, &m.Events, &m.TokensIn, &m.TokensOut); err != nil {
			return domain.UsageSummary{}, err
		}
		summary.ByModel = append(summary.ByModel, m)
	}
	return summary, rows.Err()
}

func (r *usageEventsRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM usage_events WHERE created_at < ?`,
		cutoff.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
