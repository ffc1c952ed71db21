package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepo(db *DB) *UserRepository {
	return &UserRepository{coll: db.Database.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	doc := userDoc{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		TelegramChatID: user.TelegramChatID,
		Wallet:         user.Wallet,
		WalletHistory:  []walletEntryDoc{},
		ReferralCode:   user.ReferralCode,
		ReferredBy:     user.ReferredBy,
		CreatedAt:      user.CreatedAt,
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) && strings.Contains(err.Error(), "user_email_unique") {
		return domain.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) GetByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"referralCode": code})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	opts := options.FindOne().SetProjection(bson.M{"walletHistory": 0})

	var doc userDoc
	err := r.coll.FindOne(ctx, filter, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return doc.toDomain(), nil
}

// WalletRepository keeps the ledger embedded in the user document, so the
// balance and its history change in a single-document update.
type WalletRepository struct {
	coll *mongo.Collection
}

func NewWalletRepo(db *DB) *WalletRepository {
	return &WalletRepository{coll: db.Database.Collection(usersCollection)}
}

func (r *WalletRepository) Credit(ctx context.Context, entry *domain.WalletEntry) (int64, error) {
	return r.apply(ctx, entry, false)
}

func (r *WalletRepository) Debit(ctx context.Context, entry *domain.WalletEntry) (int64, error) {
	return r.apply(ctx, entry, true)
}

func (r *WalletRepository) apply(ctx context.Context, entry *domain.WalletEntry, guard bool) (int64, error) {
	filter := bson.M{"_id": entry.UserID}
	if entry.IdempotencyKey != "" {
		filter["walletHistory.key"] = bson.M{"$ne": entry.IdempotencyKey}
	}
	if guard {
		filter["wallet"] = bson.M{"$gte": -entry.Amount}
	}

	update := bson.M{
		"$inc": bson.M{"wallet": entry.Amount},
		"$push": bson.M{"walletHistory": walletEntryDoc{
			ID:      entry.ID,
			Amount:  entry.Amount,
			Message: entry.Message,
			Key:     entry.IdempotencyKey,
			Date:    entry.Date,
		}},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"wallet": 1})

	var doc userDoc
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		return doc.Wallet, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, fmt.Errorf("apply wallet entry: %w", err)
	}

	// find out which condition rejected the update
	err = r.coll.FindOne(ctx, bson.M{"_id": entry.UserID}, options.FindOne().
		SetProjection(bson.M{"wallet": 1, "walletHistory.key": 1})).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, domain.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get wallet: %w", err)
	}
	if entry.IdempotencyKey != "" {
		for _, e := range doc.WalletHistory {
			if e.Key == entry.IdempotencyKey {
				return 0, domain.ErrDuplicateEntry
			}
		}
	}
	return 0, domain.ErrInsufficientFunds
}

// History returns entries in insertion order.
func (r *WalletRepository) History(ctx context.Context, userID string) ([]domain.WalletEntry, error) {
	opts := options.FindOne().SetProjection(bson.M{"walletHistory": 1})

	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get wallet history: %w", err)
	}

	res := make([]domain.WalletEntry, 0, len(doc.WalletHistory))
	for _, e := range doc.WalletHistory {
		res = append(res, domain.WalletEntry{
			ID:             e.ID,
			UserID:         userID,
			Amount:         e.Amount,
			Message:        e.Message,
			IdempotencyKey: e.Key,
			Date:           e.Date.UTC(),
		})
	}
	return res, nil
}
