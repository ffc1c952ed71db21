package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
)

type CouponRepository struct {
	base
}

func NewCouponRepo(db *dbpg.DB) *CouponRepository {
	return &CouponRepository{base: newBase(db)}
}

func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	query := `SELECT c.code, c.discount_type, c.discount, c.max_discount, c.minimum_amount,
			         c.usage_limit, c.expiry, c.status,
			         COALESCE(array_agg(u.user_id) FILTER (WHERE u.user_id IS NOT NULL), '{}')
			  FROM coupons c
			  LEFT JOIN coupon_users u ON u.code = c.code
			  WHERE c.code = $1
			  GROUP BY c.code`

	row, err := r.queryRow(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("get coupon: %w", err)
	}

	var c domain.Coupon
	var usedBy pq.StringArray
	if err = row.Scan(
		&c.Code, &c.DiscountType, &c.Discount, &c.MaxDiscount, &c.MinimumAmount,
		&c.Limit, &c.Expiry, &c.Status, &usedBy,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("scan coupon: %w", err)
	}
	c.UsedBy = usedBy

	return &c, nil
}

// ConsumeUse records the user first so a second use by the same user loses on
// the primary key, then takes one unit off the limit under the usability check.
func (r *CouponRepository) ConsumeUse(ctx context.Context, code, userID string, now time.Time) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO coupon_users (code, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			code, userID,
		)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
				return domain.ErrCouponNotFound
			}
			return fmt.Errorf("record coupon user: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("coupon user rows affected: %w", err)
		} else if n == 0 {
			return domain.ErrCouponAlreadyApplied
		}

		res, err = tx.ExecContext(ctx,
			`UPDATE coupons SET usage_limit = usage_limit - 1
			 WHERE code = $1 AND status = $2 AND expiry >= $3 AND usage_limit > 0`,
			code, domain.CouponActive, now,
		)
		if err != nil {
			return fmt.Errorf("consume coupon: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("coupon rows affected: %w", err)
		} else if n == 0 {
			return domain.ErrCouponInvalid
		}

		return nil
	})
}

func (r *CouponRepository) ReleaseUse(ctx context.Context, code, userID string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM coupon_users WHERE code = $1 AND user_id = $2`, code, userID)
		if err != nil {
			return fmt.Errorf("delete coupon user: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("coupon user rows affected: %w", err)
		}
		if n == 0 {
			return nil
		}

		if _, err = tx.ExecContext(ctx, `UPDATE coupons SET usage_limit = usage_limit + 1 WHERE code = $1`, code); err != nil {
			return fmt.Errorf("release coupon: %w", err)
		}
		return nil
	})
}

func (r *CouponRepository) InsertRedemption(ctx context.Context, red *domain.Redemption) error {
	query := `INSERT INTO coupon_redemptions
			      (payment_intent_id, code, user_id, original_amount, discount_amount, new_amount, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  ON CONFLICT (payment_intent_id) DO NOTHING`

	res, err := r.exec(
		ctx, query,
		red.PaymentIntentID, red.Code, red.UserID, red.OriginalAmount,
		red.DiscountAmount, red.NewAmount, red.Status, red.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert redemption: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("redemption rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrRedemptionExists
	}

	return nil
}

func (r *CouponRepository) GetRedemption(ctx context.Context, intentID string) (*domain.Redemption, error) {
	query := `SELECT payment_intent_id, code, user_id, original_amount, discount_amount, new_amount, status, created_at
			  FROM coupon_redemptions
			  WHERE payment_intent_id = $1`

	row, err := r.queryRow(ctx, query, intentID)
	if err != nil {
		return nil, fmt.Errorf("get redemption: %w", err)
	}

	var red domain.Redemption
	if err = row.Scan(
		&red.PaymentIntentID, &red.Code, &red.UserID, &red.OriginalAmount,
		&red.DiscountAmount, &red.NewAmount, &red.Status, &red.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRedemptionNotFound
		}
		return nil, fmt.Errorf("scan redemption: %w", err)
	}

	return &red, nil
}

func (r *CouponRepository) MarkRedemptionApplied(ctx context.Context, intentID string) error {
	res, err := r.exec(ctx,
		`UPDATE coupon_redemptions SET status = $2 WHERE payment_intent_id = $1`,
		intentID, domain.RedemptionApplied,
	)
	if err != nil {
		return fmt.Errorf("mark redemption applied: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrRedemptionNotFound
	}
	return nil
}

func (r *CouponRepository) DeleteRedemption(ctx context.Context, intentID string) error {
	if _, err := r.exec(ctx, `DELETE FROM coupon_redemptions WHERE payment_intent_id = $1`, intentID); err != nil {
		return fmt.Errorf("delete redemption: %w", err)
	}
	return nil
}
