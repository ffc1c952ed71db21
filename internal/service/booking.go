package service

import (
	"context"
	"fmt"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/metrics"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingService drives the cancellation lifecycle of completed bookings.
type BookingService struct {
	bookingRepo ports.BookingRepo
	hotelRepo   ports.HotelRepo
	userRepo    ports.UserRepo
	ledger      *LedgerService
	tx          ports.Transactor
	notify      bookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	hotelRepo ports.HotelRepo,
	userRepo ports.UserRepo,
	ledger *LedgerService,
	tx ports.Transactor,
	notifier ports.Notifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		userRepo:    userRepo,
		ledger:      ledger,
		tx:          tx,
		notify:      bookingNotifier{notifier: notifier, logger: logger},
		logger:      logger,
	}
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return s.bookingRepo.ListByUser(ctx, userID)
}

// RequestCancellation moves a completed booking to cancel_pending. Only the
// guest who owns the booking may ask.
func (s *BookingService) RequestCancellation(ctx context.Context, req domain.CancellationRequest) (*domain.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != req.UserID {
		return nil, domain.ErrForbidden
	}
	if !booking.Status.CanTransitionTo(domain.BookingStatusCancelPending) {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidTransition, booking.Status)
	}

	reason := req.Reason
	err = s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status, domain.BookingStatusCancelPending, &reason)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	booking.Status = domain.BookingStatusCancelPending
	booking.CancellationReason = &reason

	metrics.ObserveCancellation("requested")
	s.logger.Info("cancellation requested",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", booking.UserID),
	)

	go s.notifyManager(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// DecideCancellation lets the hotel manager accept or reject a pending
// cancellation. Acceptance refunds the full total cost to the guest wallet in
// the same transaction as the status change.
func (s *BookingService) DecideCancellation(ctx context.Context, d domain.CancellationDecision) (*domain.Booking, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, d.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	hotel, err := s.hotelRepo.GetByID(ctx, booking.HotelID)
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}
	if hotel.ManagerID != d.ManagerID {
		return nil, domain.ErrForbidden
	}

	target := domain.BookingStatusCancelRejected
	if d.Accept {
		target = domain.BookingStatusCancelled
	}
	if !booking.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidTransition, booking.Status)
	}

	from := booking.Status
	if d.Accept {
		err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
			if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, from, target, nil); err != nil {
				return fmt.Errorf("update status: %w", err)
			}
			reason := fmt.Sprintf("Refund for cancelled booking at %s", hotel.Name)
			_, err := s.ledger.Credit(ctx, booking.UserID, booking.TotalCost, reason, "refund:"+booking.ID)
			return err
		})
	} else {
		err = s.bookingRepo.UpdateStatus(ctx, booking.ID, from, target, nil)
	}
	if err != nil {
		return nil, err
	}
	booking.Status = target

	event := "rejected"
	if d.Accept {
		event = "accepted"
	}
	metrics.ObserveCancellation(event)
	s.logger.Info("cancellation decided",
		logger.String("booking_id", booking.ID),
		logger.String("status", string(target)),
		logger.Int64("refund", refundOf(booking)),
	)

	go s.notifyGuest(context.WithoutCancel(ctx), booking, hotel)

	return booking, nil
}

func refundOf(b *domain.Booking) int64 {
	if b.Status == domain.BookingStatusCancelled {
		return b.TotalCost
	}
	return 0
}

func (s *BookingService) notifyManager(ctx context.Context, b *domain.Booking) {
	hotel, err := s.hotelRepo.GetByID(ctx, b.HotelID)
	if err != nil {
		s.logger.Error("failed to get hotel for notification",
			logger.String("hotel_id", b.HotelID),
			logger.String("error", err.Error()),
		)
		return
	}

	manager, err := s.userRepo.GetByID(ctx, hotel.ManagerID)
	if err != nil {
		s.logger.Error("failed to get manager for notification",
			logger.String("user_id", hotel.ManagerID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notify.CancellationRequested(ctx, manager, hotel, b)
}

func (s *BookingService) notifyGuest(ctx context.Context, b *domain.Booking, hotel *domain.Hotel) {
	user, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", b.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notify.CancellationDecided(ctx, user, hotel, b)
}
