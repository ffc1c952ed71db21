package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CouponRepository struct {
	coupons     *mongo.Collection
	redemptions *mongo.Collection
}

func NewCouponRepo(db *DB) *CouponRepository {
	return &CouponRepository{
		coupons:     db.Database.Collection(couponsCollection),
		redemptions: db.Database.Collection(redemptionsCollection),
	}
}

func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var doc couponDoc
	err := r.coupons.FindOne(ctx, bson.M{"_id": code}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get coupon: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CouponRepository) ConsumeUse(ctx context.Context, code, userID string, now time.Time) error {
	filter := bson.M{
		"_id":    code,
		"status": string(domain.CouponActive),
		"expiry": bson.M{"$gte": now.UTC()},
		"limit":  bson.M{"$gt": 0},
		"usedBy": bson.M{"$ne": userID},
	}
	update := bson.M{
		"$inc":  bson.M{"limit": -1},
		"$push": bson.M{"usedBy": userID},
	}

	res, err := r.coupons.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("consume coupon: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	c, err := r.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if c.UsedByUser(userID) {
		return domain.ErrCouponAlreadyApplied
	}
	return domain.ErrCouponInvalid
}

func (r *CouponRepository) ReleaseUse(ctx context.Context, code, userID string) error {
	filter := bson.M{"_id": code, "usedBy": userID}
	update := bson.M{
		"$inc":  bson.M{"limit": 1},
		"$pull": bson.M{"usedBy": userID},
	}

	if _, err := r.coupons.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("release coupon: %w", err)
	}
	return nil
}

func (r *CouponRepository) InsertRedemption(ctx context.Context, red *domain.Redemption) error {
	doc := redemptionDoc{
		PaymentIntentID: red.PaymentIntentID,
		Code:            red.Code,
		UserID:          red.UserID,
		OriginalAmount:  red.OriginalAmount,
		DiscountAmount:  red.DiscountAmount,
		NewAmount:       red.NewAmount,
		Status:          string(red.Status),
		CreatedAt:       red.CreatedAt,
	}

	_, err := r.redemptions.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrRedemptionExists
	}
	if err != nil {
		return fmt.Errorf("insert redemption: %w", err)
	}
	return nil
}

func (r *CouponRepository) GetRedemption(ctx context.Context, intentID string) (*domain.Redemption, error) {
	var doc redemptionDoc
	err := r.redemptions.FindOne(ctx, bson.M{"_id": intentID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrRedemptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get redemption: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CouponRepository) MarkRedemptionApplied(ctx context.Context, intentID string) error {
	update := bson.M{"$set": bson.M{"status": string(domain.RedemptionApplied)}}
	res, err := r.redemptions.UpdateOne(ctx, bson.M{"_id": intentID}, update)
	if err != nil {
		return fmt.Errorf("mark redemption applied: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRedemptionNotFound
	}
	return nil
}

func (r *CouponRepository) DeleteRedemption(ctx context.Context, intentID string) error {
	if _, err := r.redemptions.DeleteOne(ctx, bson.M{"_id": intentID}); err != nil {
		return fmt.Errorf("delete redemption: %w", err)
	}
	return nil
}
