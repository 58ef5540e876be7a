package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/store"
)

// HousekeepingService periodically trims aged rows so usage analytics and
// abandoned conversations don't grow without bound.
type HousekeepingService struct {
	Store                 store.Store
	Logger                *slog.Logger
	Interval              time.Duration
	UsageRetention        time.Duration // how long usage events are kept
	ConversationRetention time.Duration // idle window before a conversation is dropped; 0 disables

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service with the given
// interval. If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(
	st store.Store,
	logger *slog.Logger,
	interval, usageRetention, conversationRetention time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:                 st,
		Logger:                logger,
		Interval:              interval,
		UsageRetention:        usageRetention,
		ConversationRetention: conversationRetention,
		stopCh:                make(chan struct{}),
		doneCh:                make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop() to shut
// the worker down gracefully.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker, blocking until any
// in-progress cleanup finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup performs the actual deletions. Both sweeps run in a single
// transaction: a failure rolls the whole sweep back and the next tick
// retries, so a partially applied sweep never commits.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	now := time.Now().UTC()

	var usageDeleted, convDeleted int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if s.UsageRetention > 0 {
			usageDeleted, err = tx.UsageEvents().DeleteBefore(ctx, now.Add(-s.UsageRetention))
			if err != nil {
				return err
			}
		}
		if s.ConversationRetention > 0 {
			convDeleted, err = tx.Conversations().DeleteIdleBefore(ctx, now.Add(-s.ConversationRetention))
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.Logger.Error("housekeeping sweep failed", "error", err)
		return
	}

	if usageDeleted > 0 {
		s.Logger.Info("deleted aged usage events", "rows", usageDeleted)
	}
	if convDeleted > 0 {
		s.Logger.Info("deleted idle conversations", "rows", convDeleted)
	}
}
