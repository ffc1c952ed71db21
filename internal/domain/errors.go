package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

var (
	ErrHotelNotFound         = fmt.Errorf("hotel %w", ErrNotFound)
	ErrBookingNotFound       = fmt.Errorf("booking %w", ErrNotFound)
	ErrUserNotFound          = fmt.Errorf("user %w", ErrNotFound)
	ErrCouponNotFound        = fmt.Errorf("coupon %w", ErrNotFound)
	ErrPaymentIntentNotFound = fmt.Errorf("payment intent %w", ErrNotFound)
	ErrRedemptionNotFound    = fmt.Errorf("redemption %w", ErrNotFound)
)

var (
	ErrSlotUnavailable   = errors.New("hotel is not available for the selected dates")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrForbidden         = errors.New("operation not permitted for this user")
)

var (
	ErrInsufficientFunds   = errors.New("insufficient wallet balance")
	ErrPaymentMismatch     = errors.New("payment intent does not match the booking request")
	ErrPaymentNotSucceeded = errors.New("payment has not succeeded")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
	// ErrGatewayRejected means the gateway answered and refused the call, so
	// nothing changed remotely.
	ErrGatewayRejected = errors.New("payment gateway rejected the request")
)

var (
	ErrCouponInvalid        = errors.New("coupon is not valid for this payment")
	ErrCouponAlreadyApplied = errors.New("coupon already applied")
)

// ErrDuplicateEntry is returned by ledger stores when an entry with the same
// idempotency key was already appended.
var ErrDuplicateEntry = errors.New("ledger entry already recorded")

// ErrRedemptionExists is returned by coupon stores when the payment intent
// already carries a redemption.
var ErrRedemptionExists = errors.New("payment intent already has a redemption")

var (
	ErrEmailTaken = errors.New("email is already registered")
	ErrOTPInvalid = errors.New("otp is invalid or expired")
	ErrValidation = errors.New("validation error")
)
