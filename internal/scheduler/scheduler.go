package scheduler

import (
	"context"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type ReminderRunner interface {
	RunOnce(ctx context.Context, now time.Time) (*domain.ReminderReport, error)
}

// Scheduler drives reminder passes on a fixed interval when no external
// cron trigger is wired up. Each tick is one full pass; the interval must
// stay under an hour or events can slip through their windows unseen.
type Scheduler struct {
	reminders ReminderRunner
	interval  time.Duration
	logger    logger.Logger
}

func New(
	reminders ReminderRunner,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reminders: reminders,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reminder scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	report, err := s.reminders.RunOnce(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("reminder pass failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if report.Events24h > 0 || report.Events1h > 0 {
		s.logger.Info("reminder pass completed",
			logger.Int("events_24h", report.Events24h),
			logger.Int("events_1h", report.Events1h),
		)
	}
}
