package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/domain"
	"github.com/aussiebroadwan/chatkit/internal/chatkit/store"
	"github.com/aussiebroadwan/chatkit/pkg/idx"
)

const (
	defaultSummaryDays = 30
	maxSummaryDays     = 365

	maxKindLen  = 64
	maxModelLen = 128
)

// UsageService records chat activity events and aggregates them per
// subject for the analytics endpoints.
type UsageService struct {
	Store store.Store
}

// Record persists a usage event for subject. The event id is assigned
// here (ULID) so callers never pick ids.
func (s *UsageService) Record(ctx context.Context, subject string, e domain.UsageEvent) (domain.UsageEvent, error) {
	if e.Kind == "" || len(e.Kind) > maxKindLen || len(e.Model) > maxModelLen {
		return domain.UsageEvent{}, ErrInvalidRequest
	}
	if e.TokensIn < 0 || e.TokensOut < 0 {
		return domain.UsageEvent{}, ErrInvalidRequest
	}
	if e.ConversationID != "" {
		if err := validateConversationID(e.ConversationID); err != nil {
			return domain.UsageEvent{}, err
		}
	}

	e.ID = idx.New().String()
	e.Subject = subject
	e.CreatedAt = time.Now().UTC()

	if err := s.Store.UsageEvents().Create(ctx, e); err != nil {
		return domain.UsageEvent{}, err
	}
	return e, nil
}

// Summary aggregates the subject's events over the trailing window.
// Days outside [1, maxSummaryDays] fall back to the default.
func (s *UsageService) Summary(ctx context.Context, subject string, days int) (domain.UsageSummary, error) {
	if days <= 0 || days > maxSummaryDays {
		days = defaultSummaryDays
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	return s.Store.UsageEvents().Summarize(ctx, subject, since)
}
