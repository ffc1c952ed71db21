package ports

import (
	"context"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
)

type CouponRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
	// ConsumeUse decrements the limit and records the user, only while the
	// coupon is usable at now and unused by userID.
	ConsumeUse(ctx context.Context, code, userID string, now time.Time) error
	ReleaseUse(ctx context.Context, code, userID string) error

	InsertRedemption(ctx context.Context, r *domain.Redemption) error
	GetRedemption(ctx context.Context, intentID string) (*domain.Redemption, error)
	MarkRedemptionApplied(ctx context.Context, intentID string) error
	DeleteRedemption(ctx context.Context, intentID string) error
}
