package ports

import (
	"context"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.User, error)
}

type WalletRepo interface {
	// Credit appends a positive entry and raises the cached balance atomically.
	Credit(ctx context.Context, entry *domain.WalletEntry) (int64, error)
	// Debit appends a negative entry only if the balance covers it, returning
	// domain.ErrInsufficientFunds otherwise.
	Debit(ctx context.Context, entry *domain.WalletEntry) (int64, error)
	History(ctx context.Context, userID string) ([]domain.WalletEntry, error)
}
