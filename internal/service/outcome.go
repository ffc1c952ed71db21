package service

import (
	"errors"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
)

// outcome maps an operation error onto a bounded metric label.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrSlotUnavailable):
		return "slot_unavailable"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrPaymentMismatch):
		return "payment_mismatch"
	case errors.Is(err, domain.ErrPaymentNotSucceeded):
		return "payment_not_succeeded"
	case errors.Is(err, domain.ErrGatewayUnavailable):
		return "gateway_unavailable"
	case errors.Is(err, domain.ErrCouponInvalid):
		return "coupon_invalid"
	case errors.Is(err, domain.ErrCouponAlreadyApplied):
		return "already_applied"
	default:
		return "error"
	}
}
