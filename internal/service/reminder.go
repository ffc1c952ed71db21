package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/metrics"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

type ReminderConfig struct {
	LookAhead   time.Duration
	Tolerance   time.Duration
	MaxAttempts int
	Workers     int
}

// ReminderService sends one check-in reminder per completed booking whose
// check-in falls inside [now+LookAhead-Tolerance, now+LookAhead+Tolerance).
type ReminderService struct {
	bookingRepo ports.BookingRepo
	hotelRepo   ports.HotelRepo
	userRepo    ports.UserRepo
	notify      bookingNotifier
	cfg         ReminderConfig
	logger      logger.Logger
	now         func() time.Time
}

func NewReminderService(
	bookingRepo ports.BookingRepo,
	hotelRepo ports.HotelRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	cfg ReminderConfig,
	logger logger.Logger,
) *ReminderService {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &ReminderService{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		userRepo:    userRepo,
		notify:      bookingNotifier{notifier: notifier, logger: logger},
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// ScanReminders never returns per-booking send failures. They are counted,
// recorded as attempts and retried on the next scan.
func (s *ReminderService) ScanReminders(ctx context.Context) (domain.ReminderReport, error) {
	target := s.now().UTC().Add(s.cfg.LookAhead)
	from, to := target.Add(-s.cfg.Tolerance), target.Add(s.cfg.Tolerance)

	due, err := s.bookingRepo.ListDueReminders(ctx, from, to, s.cfg.MaxAttempts)
	if err != nil {
		return domain.ReminderReport{}, fmt.Errorf("list due reminders: %w", err)
	}

	var sent, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for _, b := range due {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if s.remind(gctx, b) {
				sent.Add(1)
			} else {
				failed.Add(1)
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return domain.ReminderReport{}, err
	}

	return domain.ReminderReport{
		Due:    len(due),
		Sent:   int(sent.Load()),
		Failed: int(failed.Load()),
	}, nil
}

func (s *ReminderService) remind(ctx context.Context, b *domain.Booking) bool {
	err := s.send(ctx, b)
	if err != nil {
		metrics.ObserveReminder("failed")
		s.logger.Warn("reminder not sent",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		if err := s.bookingRepo.IncReminderAttempts(ctx, b.ID); err != nil {
			s.logger.Error("failed to record reminder attempt",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
		}
		return false
	}

	metrics.ObserveReminder("sent")
	if err = s.bookingRepo.MarkReminderSent(ctx, b.ID); err != nil {
		s.logger.Error("failed to mark reminder sent",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
	return true
}

func (s *ReminderService) send(ctx context.Context, b *domain.Booking) error {
	user, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	hotel, err := s.hotelRepo.GetByID(ctx, b.HotelID)
	if err != nil {
		return fmt.Errorf("get hotel: %w", err)
	}
	return s.notify.Reminder(ctx, user, hotel, b)
}
