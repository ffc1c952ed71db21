package domain

import (
	"slices"
	"time"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type CouponStatus string

const (
	CouponActive   CouponStatus = "active"
	CouponInactive CouponStatus = "inactive"
)

type Coupon struct {
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discount_type"`
	Discount      int64        `json:"discount"`
	MaxDiscount   *int64       `json:"max_discount,omitempty"`
	MinimumAmount int64        `json:"minimum_amount"`
	Limit         int          `json:"limit"`
	Expiry        time.Time    `json:"expiry"`
	Status        CouponStatus `json:"status"`
	UsedBy        []string     `json:"used_by"`
}

// Usable reports whether the coupon can still be redeemed at now.
func (c *Coupon) Usable(now time.Time) bool {
	return c.Status == CouponActive && !now.After(c.Expiry) && c.Limit > 0
}

func (c *Coupon) UsedByUser(userID string) bool {
	return slices.Contains(c.UsedBy, userID)
}

// DiscountFor returns the discount for amount, ignoring usability checks.
func (c *Coupon) DiscountFor(amount int64) int64 {
	var discount int64
	switch c.DiscountType {
	case DiscountPercentage:
		discount = amount * c.Discount / 100
		if c.MaxDiscount != nil && discount > *c.MaxDiscount {
			discount = *c.MaxDiscount
		}
	case DiscountFixed:
		discount = c.Discount
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// Apply returns the discount and the new amount, clamped at zero.
func (c *Coupon) Apply(amount int64) (discount, newAmount int64) {
	discount = c.DiscountFor(amount)
	newAmount = amount - discount
	if newAmount < 0 {
		newAmount = 0
		discount = amount
	}
	return discount, newAmount
}

type RedemptionStatus string

const (
	RedemptionPending RedemptionStatus = "pending"
	RedemptionApplied RedemptionStatus = "applied"
)

// Redemption records a coupon applied to one payment intent.
type Redemption struct {
	PaymentIntentID string           `json:"payment_intent_id"`
	Code            string           `json:"code"`
	UserID          string           `json:"user_id"`
	OriginalAmount  int64            `json:"original_amount"`
	DiscountAmount  int64            `json:"discount_amount"`
	NewAmount       int64            `json:"new_amount"`
	Status          RedemptionStatus `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
}

type DiscountResult struct {
	PaymentIntentID string `json:"payment_intent_id"`
	Code            string `json:"code"`
	OriginalAmount  int64  `json:"original_amount"`
	DiscountAmount  int64  `json:"discount_amount"`
	NewAmount       int64  `json:"new_amount"`
}

func (r *Redemption) Result() *DiscountResult {
	return &DiscountResult{
		PaymentIntentID: r.PaymentIntentID,
		Code:            r.Code,
		OriginalAmount:  r.OriginalAmount,
		DiscountAmount:  r.DiscountAmount,
		NewAmount:       r.NewAmount,
	}
}
