package scheduler

import (
	"context"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reminderScanner interface {
	ScanReminders(ctx context.Context) (domain.ReminderReport, error)
}

// Scheduler runs the reminder scan on a fixed interval until ctx is done.
type Scheduler struct {
	reminders reminderScanner
	interval  time.Duration
	logger    logger.Logger
}

func New(
	reminders reminderScanner,
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

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	report, err := s.reminders.ScanReminders(ctx)
	if err != nil {
		s.logger.Error("failed to scan reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	if report.Due == 0 {
		return
	}

	s.logger.Info("reminder scan finished",
		logger.Int("due", report.Due),
		logger.Int("sent", report.Sent),
		logger.Int("failed", report.Failed),
	)
}
