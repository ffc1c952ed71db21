package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func testCoupon() domain.Coupon {
	return domain.Coupon{
		Code:          "SUMMER10",
		DiscountType:  domain.DiscountPercentage,
		Discount:      10,
		MaxDiscount:   int64Ptr(5000),
		MinimumAmount: 10000,
		Limit:         5,
		Expiry:        fixedNow.Add(30 * 24 * time.Hour),
		Status:        domain.CouponActive,
	}
}

func openIntent(id, userID string, amount int64) domain.PaymentIntent {
	return domain.PaymentIntent{
		ID:       id,
		Amount:   amount,
		Currency: "usd",
		Status:   domain.IntentRequiresPaymentMethod,
		Metadata: domain.IntentMetadata{HotelID: "h1", UserID: userID},
	}
}

func applyRequest(code, userID, intentID string) domain.ApplyCouponRequest {
	return domain.ApplyCouponRequest{Code: code, UserID: userID, PaymentIntentID: intentID}
}

func TestDiscountService_ApplyCoupon_Success(t *testing.T) {
	s := newMemServices(t)
	s.store.coupons["SUMMER10"] = testCoupon()
	s.gateway.add(openIntent("pi_1", "u1", 20000))

	res, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))

	require.NoError(t, err)
	assert.Equal(t, int64(20000), res.OriginalAmount)
	assert.Equal(t, int64(2000), res.DiscountAmount)
	assert.Equal(t, int64(18000), res.NewAmount)
	assert.Equal(t, int64(18000), s.gateway.intents["pi_1"].Amount)

	c := s.store.coupons["SUMMER10"]
	assert.Equal(t, 4, c.Limit)
	assert.Equal(t, []string{"u1"}, c.UsedBy)
	assert.Equal(t, domain.RedemptionApplied, s.store.redemptions["pi_1"].Status)
}

func TestDiscountService_ApplyCoupon_PercentageCapped(t *testing.T) {
	s := newMemServices(t)
	s.store.coupons["SUMMER10"] = testCoupon()
	s.gateway.add(openIntent("pi_1", "u1", 90000))

	res, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))

	require.NoError(t, err)
	assert.Equal(t, int64(5000), res.DiscountAmount)
	assert.Equal(t, int64(85000), res.NewAmount)
}

func TestDiscountService_ApplyCoupon_ReplayIsIdempotent(t *testing.T) {
	s := newMemServices(t)
	s.store.coupons["SUMMER10"] = testCoupon()
	s.gateway.add(openIntent("pi_1", "u1", 20000))

	first, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))
	require.NoError(t, err)

	second, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(18000), s.gateway.intents["pi_1"].Amount)
	assert.Equal(t, 1, s.gateway.amends)
	assert.Equal(t, 4, s.store.coupons["SUMMER10"].Limit)
}

func TestDiscountService_ApplyCoupon_SecondCodeOnSameIntent(t *testing.T) {
	s := newMemServices(t)
	s.store.coupons["SUMMER10"] = testCoupon()
	other := testCoupon()
	other.Code = "WELCOME"
	s.store.coupons["WELCOME"] = other
	s.gateway.add(openIntent("pi_1", "u1", 20000))

	_, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))
	require.NoError(t, err)

	_, err = s.discount.ApplyCoupon(context.Background(), applyRequest("WELCOME", "u1", "pi_1"))

	assert.ErrorIs(t, err, domain.ErrCouponAlreadyApplied)
	assert.Equal(t, 5, s.store.coupons["WELCOME"].Limit)
}

func TestDiscountService_ApplyCoupon_UserAlreadyUsedCoupon(t *testing.T) {
	s := newMemServices(t)
	s.store.coupons["SUMMER10"] = testCoupon()
	s.gateway.add(openIntent("pi_1", "u1", 20000))
	s.gateway.add(openIntent("pi_2", "u1", 20000))

	_, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))
	require.NoError(t, err)

	_, err = s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_2"))

	assert.ErrorIs(t, err, domain.ErrCouponAlreadyApplied)
	assert.Equal(t, int64(20000), s.gateway.intents["pi_2"].Amount)
}

func TestDiscountService_ApplyCoupon_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		coupon  func(c *domain.Coupon)
		intent  domain.PaymentIntent
		userID  string
		wantErr error
	}{
		{
			name:    "expired",
			coupon:  func(c *domain.Coupon) { c.Expiry = fixedNow.Add(-time.Minute) },
			intent:  openIntent("pi_1", "u1", 20000),
			userID:  "u1",
			wantErr: domain.ErrCouponInvalid,
		},
		{
			name:    "inactive",
			coupon:  func(c *domain.Coupon) { c.Status = domain.CouponInactive },
			intent:  openIntent("pi_1", "u1", 20000),
			userID:  "u1",
			wantErr: domain.ErrCouponInvalid,
		},
		{
			name:    "exhausted",
			coupon:  func(c *domain.Coupon) { c.Limit = 0 },
			intent:  openIntent("pi_1", "u1", 20000),
			userID:  "u1",
			wantErr: domain.ErrCouponInvalid,
		},
		{
			name:    "below minimum",
			coupon:  func(c *domain.Coupon) {},
			intent:  openIntent("pi_1", "u1", 9999),
			userID:  "u1",
			wantErr: domain.ErrCouponInvalid,
		},
		{
			name:    "intent of another user",
			coupon:  func(c *domain.Coupon) {},
			intent:  openIntent("pi_1", "u2", 20000),
			userID:  "u1",
			wantErr: domain.ErrPaymentMismatch,
		},
		{
			name:   "intent already paid",
			coupon: func(c *domain.Coupon) {},
			intent: func() domain.PaymentIntent {
				p := openIntent("pi_1", "u1", 20000)
				p.Status = domain.IntentSucceeded
				return p
			}(),
			userID:  "u1",
			wantErr: domain.ErrCouponInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newMemServices(t)
			c := testCoupon()
			tt.coupon(&c)
			s.store.coupons[c.Code] = c
			s.gateway.add(tt.intent)

			_, err := s.discount.ApplyCoupon(context.Background(), applyRequest(c.Code, tt.userID, "pi_1"))

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, c.Limit, s.store.coupons[c.Code].Limit)
			assert.Equal(t, tt.intent.Amount, s.gateway.intents["pi_1"].Amount)
			assert.Empty(t, s.store.redemptions)
		})
	}
}

func TestDiscountService_ApplyCoupon_UnknownCode(t *testing.T) {
	s := newMemServices(t)
	s.gateway.add(openIntent("pi_1", "u1", 20000))

	_, err := s.discount.ApplyCoupon(context.Background(), applyRequest("NOPE", "u1", "pi_1"))

	assert.ErrorIs(t, err, domain.ErrCouponNotFound)
}

func TestDiscountService_ApplyCoupon_AmendRejectedReleasesUse(t *testing.T) {
	s := newMemServices(t)
	s.store.coupons["SUMMER10"] = testCoupon()
	s.gateway.add(openIntent("pi_1", "u1", 20000))
	s.gateway.failAmend = fmt.Errorf("%w: amount too small", domain.ErrGatewayRejected)

	_, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))

	assert.ErrorIs(t, err, domain.ErrGatewayRejected)
	c := s.store.coupons["SUMMER10"]
	assert.Equal(t, 5, c.Limit)
	assert.Empty(t, c.UsedBy)
	assert.Empty(t, s.store.redemptions)

	s.gateway.failAmend = nil
	res, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))
	require.NoError(t, err)
	assert.Equal(t, int64(18000), res.NewAmount)
}

func TestDiscountService_ApplyCoupon_UnavailableAmendKeepsReservation(t *testing.T) {
	s := newMemServices(t)
	s.store.coupons["SUMMER10"] = testCoupon()
	s.gateway.add(openIntent("pi_1", "u1", 20000))
	s.gateway.failAmend = domain.ErrGatewayUnavailable

	_, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))

	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	assert.Equal(t, 4, s.store.coupons["SUMMER10"].Limit)
	assert.Equal(t, domain.RedemptionPending, s.store.redemptions["pi_1"].Status)

	s.gateway.failAmend = nil
	res, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))
	require.NoError(t, err)
	assert.Equal(t, int64(18000), res.NewAmount)
	assert.Equal(t, 4, s.store.coupons["SUMMER10"].Limit)
}

func TestDiscountService_ApplyCoupon_AmendAppliedDespiteTimeout(t *testing.T) {
	s := newMemServices(t)
	s.store.coupons["SUMMER10"] = testCoupon()
	s.gateway.add(openIntent("pi_1", "u1", 20000))
	s.gateway.lateAmend = domain.ErrGatewayUnavailable

	_, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	assert.Equal(t, int64(18000), s.gateway.intents["pi_1"].Amount)

	res, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))

	require.NoError(t, err)
	assert.Equal(t, int64(20000), res.OriginalAmount)
	assert.Equal(t, int64(2000), res.DiscountAmount)
	assert.Equal(t, int64(18000), res.NewAmount)
	assert.Equal(t, int64(18000), s.gateway.intents["pi_1"].Amount)
	assert.Equal(t, 4, s.store.coupons["SUMMER10"].Limit)
	assert.Equal(t, domain.RedemptionApplied, s.store.redemptions["pi_1"].Status)
}

func TestDiscountService_ApplyCoupon_PendingReplayRejectedReleasesUse(t *testing.T) {
	s := newMemServices(t)
	c := testCoupon()
	c.Limit = 4
	c.UsedBy = []string{"u1"}
	s.store.coupons["SUMMER10"] = c
	s.store.redemptions["pi_1"] = domain.Redemption{
		PaymentIntentID: "pi_1", Code: "SUMMER10", UserID: "u1",
		OriginalAmount: 20000, DiscountAmount: 2000, NewAmount: 18000,
		Status: domain.RedemptionPending,
	}
	s.gateway.add(openIntent("pi_1", "u1", 20000))
	s.gateway.failAmend = fmt.Errorf("%w: intent already confirmed", domain.ErrGatewayRejected)

	_, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))

	assert.ErrorIs(t, err, domain.ErrGatewayRejected)
	assert.Equal(t, 5, s.store.coupons["SUMMER10"].Limit)
	assert.Empty(t, s.store.coupons["SUMMER10"].UsedBy)
	assert.Empty(t, s.store.redemptions)
}

func TestDiscountService_ApplyCoupon_ResumesPendingRedemption(t *testing.T) {
	s := newMemServices(t)
	c := testCoupon()
	c.Limit = 4
	c.UsedBy = []string{"u1"}
	s.store.coupons["SUMMER10"] = c
	s.store.redemptions["pi_1"] = domain.Redemption{
		PaymentIntentID: "pi_1", Code: "SUMMER10", UserID: "u1",
		OriginalAmount: 20000, DiscountAmount: 2000, NewAmount: 18000,
		Status: domain.RedemptionPending,
	}
	s.gateway.add(openIntent("pi_1", "u1", 20000))

	res, err := s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))

	require.NoError(t, err)
	assert.Equal(t, int64(18000), res.NewAmount)
	assert.Equal(t, int64(18000), s.gateway.intents["pi_1"].Amount)
	assert.Equal(t, domain.RedemptionApplied, s.store.redemptions["pi_1"].Status)
	assert.Equal(t, 4, s.store.coupons["SUMMER10"].Limit)
}

func TestDiscountService_ApplyCoupon_ConcurrentUsersRespectLimit(t *testing.T) {
	s := newMemServices(t)
	c := testCoupon()
	c.Limit = 2
	s.store.coupons["SUMMER10"] = c

	const n = 10
	for i := 0; i < n; i++ {
		s.gateway.add(openIntent(fmt.Sprintf("pi_%d", i), fmt.Sprintf("u%d", i), 20000))
	}

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.discount.ApplyCoupon(context.Background(),
				applyRequest("SUMMER10", fmt.Sprintf("u%d", i), fmt.Sprintf("pi_%d", i)))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrCouponInvalid)
	}
	assert.Equal(t, 2, succeeded)
	assert.Equal(t, 0, s.store.coupons["SUMMER10"].Limit)
	assert.Len(t, s.store.redemptions, 2)
}

func TestDiscountService_ApplyCoupon_ConcurrentSameIntent(t *testing.T) {
	s := newMemServices(t)
	s.store.coupons["SUMMER10"] = testCoupon()
	s.gateway.add(openIntent("pi_1", "u1", 20000))

	const n = 8
	var wg sync.WaitGroup
	results := make([]*domain.DiscountResult, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.discount.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))
		}(i)
	}
	wg.Wait()

	for i := range errs {
		if errs[i] != nil {
			// losers that saw the user's use before the redemption is visible
			assert.ErrorIs(t, errs[i], domain.ErrCouponAlreadyApplied)
			continue
		}
		assert.Equal(t, int64(18000), results[i].NewAmount)
	}
	assert.Equal(t, 4, s.store.coupons["SUMMER10"].Limit)
	assert.Equal(t, int64(18000), s.gateway.intents["pi_1"].Amount)
}

func TestDiscountService_ApplyCoupon_ReleaseFailureIsLogged(t *testing.T) {
	coupons := mocks.NewMockCouponRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	svc := NewDiscountService(coupons, gateway, passthroughTx{}, newTestLogger(t))
	svc.now = func() time.Time { return fixedNow }

	c := testCoupon()
	intent := openIntent("pi_1", "u1", 20000)
	amendErr := fmt.Errorf("%w: card declined", domain.ErrGatewayRejected)

	coupons.EXPECT().GetRedemption(mock.Anything, "pi_1").Return(nil, domain.ErrRedemptionNotFound)
	coupons.EXPECT().GetByCode(mock.Anything, "SUMMER10").Return(&c, nil)
	gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(&intent, nil)
	coupons.EXPECT().InsertRedemption(mock.Anything, mock.Anything).Return(nil)
	coupons.EXPECT().ConsumeUse(mock.Anything, "SUMMER10", "u1", fixedNow).Return(nil)
	gateway.EXPECT().AmendIntent(mock.Anything, "pi_1", int64(18000)).Return(nil, amendErr)
	coupons.EXPECT().DeleteRedemption(mock.Anything, "pi_1").Return(errors.New("db down"))

	_, err := svc.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))

	assert.ErrorIs(t, err, amendErr)
}

func TestDiscountService_ApplyCoupon_UnknownAmendErrorKeepsReservation(t *testing.T) {
	coupons := mocks.NewMockCouponRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	svc := NewDiscountService(coupons, gateway, passthroughTx{}, newTestLogger(t))
	svc.now = func() time.Time { return fixedNow }

	c := testCoupon()
	intent := openIntent("pi_1", "u1", 20000)
	amendErr := errors.New("connection reset")

	coupons.EXPECT().GetRedemption(mock.Anything, "pi_1").Return(nil, domain.ErrRedemptionNotFound)
	coupons.EXPECT().GetByCode(mock.Anything, "SUMMER10").Return(&c, nil)
	gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(&intent, nil)
	coupons.EXPECT().InsertRedemption(mock.Anything, mock.Anything).Return(nil)
	coupons.EXPECT().ConsumeUse(mock.Anything, "SUMMER10", "u1", fixedNow).Return(nil)
	gateway.EXPECT().AmendIntent(mock.Anything, "pi_1", int64(18000)).Return(nil, amendErr)

	_, err := svc.ApplyCoupon(context.Background(), applyRequest("SUMMER10", "u1", "pi_1"))

	assert.ErrorIs(t, err, amendErr)
	coupons.AssertNotCalled(t, "DeleteRedemption", mock.Anything, mock.Anything)
	coupons.AssertNotCalled(t, "ReleaseUse", mock.Anything, mock.Anything, mock.Anything)
}
