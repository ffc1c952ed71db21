package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/metrics"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// PaymentService quotes stays, opens card payment intents and turns a paid
// request into a completed booking.
type PaymentService struct {
	hotelRepo   ports.HotelRepo
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	ledger      *LedgerService
	gateway     ports.PaymentGateway
	tx          ports.Transactor
	notify      bookingNotifier
	logger      logger.Logger
	currency    string
	now         func() time.Time
}

func NewPaymentService(
	hotelRepo ports.HotelRepo,
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	ledger *LedgerService,
	gateway ports.PaymentGateway,
	tx ports.Transactor,
	notifier ports.Notifier,
	logger logger.Logger,
	currency string,
) *PaymentService {
	return &PaymentService{
		hotelRepo:   hotelRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		ledger:      ledger,
		gateway:     gateway,
		tx:          tx,
		notify:      bookingNotifier{notifier: notifier, logger: logger},
		logger:      logger,
		currency:    currency,
		now:         time.Now,
	}
}

// CreateIntent prices the stay and opens a gateway intent tagged with the
// hotel and user, so settlement can later check who it was meant for.
func (s *PaymentService) CreateIntent(ctx context.Context, req domain.QuoteRequest) (*domain.PaymentIntent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.GetByID(ctx, req.HotelID)
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}
	if err = hotel.CheckOccupancy(req.AdultCount, req.ChildCount, req.ExtraBedCount); err != nil {
		return nil, err
	}
	if _, err = s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	stay := req.Stay()
	overlap, err := s.hotelRepo.HasOverlap(ctx, hotel.ID, stay)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if overlap {
		return nil, domain.ErrSlotUnavailable
	}

	amount := hotel.Price(stay, req.ExtraBedCount)
	intent, err := s.gateway.CreateIntent(ctx, amount, s.currency, domain.IntentMetadata{
		HotelID: hotel.ID,
		UserID:  req.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	s.logger.Info("payment intent created",
		logger.String("intent_id", intent.ID),
		logger.String("hotel_id", hotel.ID),
		logger.String("user_id", req.UserID),
		logger.Int64("amount", amount),
	)

	return intent, nil
}

// Settle records a completed booking once payment is secured. For the wallet
// the debit and the booking commit together or not at all.
func (s *PaymentService) Settle(ctx context.Context, req domain.SettleRequest) (booking *domain.Booking, err error) {
	defer func() {
		metrics.ObserveSettlement(string(req.PaymentMethod), outcome(err))
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.GetByID(ctx, req.HotelID)
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}
	if err = hotel.CheckOccupancy(req.AdultCount, req.ChildCount, req.ExtraBedCount); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	now := s.now().UTC()
	stay := req.Stay()
	booking = &domain.Booking{
		ID:            uuid.New().String(),
		HotelID:       hotel.ID,
		UserID:        user.ID,
		Guest:         req.Guest,
		AdultCount:    req.AdultCount,
		ChildCount:    req.ChildCount,
		ExtraBedCount: req.ExtraBedCount,
		CheckIn:       stay.CheckIn,
		CheckOut:      stay.CheckOut,
		PaymentMethod: req.PaymentMethod,
		Status:        domain.BookingStatusCompleted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	switch req.PaymentMethod {
	case domain.PaymentMethodWallet:
		err = s.settleWallet(ctx, hotel, booking)
	case domain.PaymentMethodCard:
		var existing *domain.Booking
		existing, err = s.settleCard(ctx, req, booking)
		if existing != nil {
			return existing, nil
		}
	default:
		err = fmt.Errorf("%w: unsupported payment method %q", domain.ErrValidation, req.PaymentMethod)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking settled",
		logger.String("booking_id", booking.ID),
		logger.String("hotel_id", booking.HotelID),
		logger.String("user_id", booking.UserID),
		logger.String("method", string(booking.PaymentMethod)),
		logger.Int64("total_cost", booking.TotalCost),
	)

	go s.notify.Confirmed(context.WithoutCancel(ctx), user, hotel, booking)

	return booking, nil
}

func (s *PaymentService) settleWallet(ctx context.Context, hotel *domain.Hotel, booking *domain.Booking) error {
	booking.TotalCost = hotel.Price(booking.Stay(), booking.ExtraBedCount)

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		reason := fmt.Sprintf("Booking at %s", hotel.Name)
		if _, err := s.ledger.Debit(ctx, booking.UserID, booking.TotalCost, reason, "booking:"+booking.ID); err != nil {
			return err
		}
		if err := s.bookingRepo.Create(ctx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
}

// settleCard returns a non-nil booking when the intent already settled this
// exact request, so client retries stay idempotent.
func (s *PaymentService) settleCard(ctx context.Context, req domain.SettleRequest, booking *domain.Booking) (*domain.Booking, error) {
	intent, err := s.gateway.RetrieveIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("retrieve payment intent: %w", err)
	}
	if !intent.BelongsTo(req.HotelID, req.UserID) {
		return nil, domain.ErrPaymentMismatch
	}
	if intent.Status != domain.IntentSucceeded {
		return nil, fmt.Errorf("%w: intent status is %s", domain.ErrPaymentNotSucceeded, intent.Status)
	}

	existing, err := s.bookingRepo.GetByPaymentIntent(ctx, intent.ID)
	switch {
	case err == nil:
		if existing.UserID == booking.UserID && existing.HotelID == booking.HotelID &&
			existing.CheckIn.Equal(booking.CheckIn) && existing.CheckOut.Equal(booking.CheckOut) {
			return existing, nil
		}
		return nil, fmt.Errorf("%w: intent already used by another booking", domain.ErrPaymentMismatch)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get booking by intent: %w", err)
	}

	intentID := intent.ID
	booking.TotalCost = intent.Amount
	booking.PaymentIntentID = &intentID

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			s.logger.Warn("paid intent could not be settled",
				logger.String("intent_id", intent.ID),
				logger.String("hotel_id", req.HotelID),
				logger.String("user_id", req.UserID),
			)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	return nil, nil
}
