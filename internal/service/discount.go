package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/metrics"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// DiscountService applies coupons to open card payment intents. A coupon use
// is reserved locally before the gateway amount changes and released again
// only if the gateway definitely refused. An amend with an unknown outcome
// leaves the reservation pending for replay.
type DiscountService struct {
	couponRepo ports.CouponRepo
	gateway    ports.PaymentGateway
	tx         ports.Transactor
	logger     logger.Logger
	now        func() time.Time
}

func NewDiscountService(
	couponRepo ports.CouponRepo,
	gateway ports.PaymentGateway,
	tx ports.Transactor,
	logger logger.Logger,
) *DiscountService {
	return &DiscountService{
		couponRepo: couponRepo,
		gateway:    gateway,
		tx:         tx,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *DiscountService) ApplyCoupon(ctx context.Context, req domain.ApplyCouponRequest) (res *domain.DiscountResult, err error) {
	defer func() {
		metrics.ObserveCoupon(outcome(err))
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}

	res, err = s.replay(ctx, req)
	if res != nil || err != nil {
		return res, err
	}

	coupon, err := s.couponRepo.GetByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("get coupon: %w", err)
	}

	now := s.now().UTC()
	if !coupon.Usable(now) {
		return nil, fmt.Errorf("%w: coupon is inactive, expired or exhausted", domain.ErrCouponInvalid)
	}
	if coupon.UsedByUser(req.UserID) {
		return nil, domain.ErrCouponAlreadyApplied
	}

	intent, err := s.gateway.RetrieveIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("retrieve payment intent: %w", err)
	}
	if intent.Metadata.UserID != req.UserID {
		return nil, domain.ErrPaymentMismatch
	}
	if intent.Status == domain.IntentSucceeded || intent.Status == domain.IntentCanceled {
		return nil, fmt.Errorf("%w: payment intent is %s", domain.ErrCouponInvalid, intent.Status)
	}
	if intent.Amount < coupon.MinimumAmount {
		return nil, fmt.Errorf("%w: minimum amount is %s", domain.ErrCouponInvalid, formatAmount(coupon.MinimumAmount))
	}

	discount, newAmount := coupon.Apply(intent.Amount)
	red := &domain.Redemption{
		PaymentIntentID: intent.ID,
		Code:            coupon.Code,
		UserID:          req.UserID,
		OriginalAmount:  intent.Amount,
		DiscountAmount:  discount,
		NewAmount:       newAmount,
		Status:          domain.RedemptionPending,
		CreatedAt:       now,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.couponRepo.InsertRedemption(ctx, red); err != nil {
			return err
		}
		return s.couponRepo.ConsumeUse(ctx, coupon.Code, req.UserID, now)
	})
	if errors.Is(err, domain.ErrRedemptionExists) {
		// a concurrent call won the intent
		res, err = s.replay(ctx, req)
		if res == nil && err == nil {
			err = domain.ErrCouponAlreadyApplied
		}
		return res, err
	}
	if err != nil {
		return nil, fmt.Errorf("reserve coupon: %w", err)
	}

	if _, err = s.gateway.AmendIntent(ctx, red.PaymentIntentID, red.NewAmount); err != nil {
		s.settleFailedAmend(ctx, red, err)
		return nil, fmt.Errorf("amend payment intent: %w", err)
	}

	s.markApplied(ctx, red)

	s.logger.Info("coupon applied",
		logger.String("code", red.Code),
		logger.String("intent_id", red.PaymentIntentID),
		logger.String("user_id", red.UserID),
		logger.Int64("discount", red.DiscountAmount),
	)

	return red.Result(), nil
}

// replay handles an intent that already carries a redemption. It returns
// (nil, nil) when there is none.
func (s *DiscountService) replay(ctx context.Context, req domain.ApplyCouponRequest) (*domain.DiscountResult, error) {
	red, err := s.couponRepo.GetRedemption(ctx, req.PaymentIntentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get redemption: %w", err)
	}

	if red.UserID != req.UserID {
		return nil, domain.ErrPaymentMismatch
	}
	if red.Code != req.Code {
		return nil, fmt.Errorf("%w: intent already carries coupon %s", domain.ErrCouponAlreadyApplied, red.Code)
	}
	if red.Status == domain.RedemptionApplied {
		return red.Result(), nil
	}

	// pending: a previous attempt stopped between reservation and confirmation;
	// the amount is absolute so amending again is safe
	if _, err = s.gateway.AmendIntent(ctx, red.PaymentIntentID, red.NewAmount); err != nil {
		s.settleFailedAmend(ctx, red, err)
		return nil, fmt.Errorf("amend payment intent: %w", err)
	}
	s.markApplied(ctx, red)

	return red.Result(), nil
}

// settleFailedAmend releases the reservation when the gateway refused the
// amend. Any other failure may have reached the gateway, so the redemption
// stays pending and a retry re-sends the same absolute amount.
func (s *DiscountService) settleFailedAmend(ctx context.Context, red *domain.Redemption, err error) {
	if errors.Is(err, domain.ErrGatewayRejected) || errors.Is(err, domain.ErrPaymentIntentNotFound) {
		s.release(ctx, red)
		return
	}
	s.logger.Warn("coupon amend outcome unknown, redemption kept pending",
		logger.String("code", red.Code),
		logger.String("intent_id", red.PaymentIntentID),
		logger.String("error", err.Error()),
	)
}

func (s *DiscountService) markApplied(ctx context.Context, red *domain.Redemption) {
	if err := s.couponRepo.MarkRedemptionApplied(ctx, red.PaymentIntentID); err != nil {
		s.logger.Error("failed to mark redemption applied",
			logger.String("intent_id", red.PaymentIntentID),
			logger.String("error", err.Error()),
		)
		return
	}
	red.Status = domain.RedemptionApplied
}

func (s *DiscountService) release(ctx context.Context, red *domain.Redemption) {
	err := s.tx.WithinTx(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.couponRepo.DeleteRedemption(ctx, red.PaymentIntentID); err != nil {
			return err
		}
		return s.couponRepo.ReleaseUse(ctx, red.Code, red.UserID)
	})
	if err != nil {
		s.logger.Error("failed to release coupon reservation",
			logger.String("code", red.Code),
			logger.String("intent_id", red.PaymentIntentID),
			logger.String("error", err.Error()),
		)
	}
}
