package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/metrics"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// LedgerService owns wallet balances. The cached balance on the user is only
// ever changed together with an appended entry.
type LedgerService struct {
	users   ports.UserRepo
	wallets ports.WalletRepo
	logger  logger.Logger
	now     func() time.Time
}

func NewLedgerService(users ports.UserRepo, wallets ports.WalletRepo, logger logger.Logger) *LedgerService {
	return &LedgerService{
		users:   users,
		wallets: wallets,
		logger:  logger,
		now:     time.Now,
	}
}

// Credit adds amount to the wallet. A repeated non-empty key is a no-op that
// returns the current balance.
func (s *LedgerService) Credit(ctx context.Context, userID string, amount int64, reason, key string) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: credit amount must be positive", domain.ErrValidation)
	}

	entry := s.newEntry(userID, amount, reason, key)
	balance, err := s.wallets.Credit(ctx, entry)
	if errors.Is(err, domain.ErrDuplicateEntry) {
		s.logger.Debug("duplicate ledger credit ignored",
			logger.String("user_id", userID),
			logger.String("key", key),
		)
		return s.Balance(ctx, userID)
	}
	if err != nil {
		return 0, fmt.Errorf("credit wallet: %w", err)
	}

	metrics.ObserveLedger("credit")
	s.logger.Info("wallet credited",
		logger.String("user_id", userID),
		logger.Int64("amount", amount),
		logger.String("reason", reason),
	)

	return balance, nil
}

// Debit removes amount from the wallet, failing with domain.ErrInsufficientFunds
// without writing anything when the balance does not cover it.
func (s *LedgerService) Debit(ctx context.Context, userID string, amount int64, reason, key string) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: debit amount must be positive", domain.ErrValidation)
	}

	entry := s.newEntry(userID, -amount, reason, key)
	balance, err := s.wallets.Debit(ctx, entry)
	if errors.Is(err, domain.ErrDuplicateEntry) {
		return s.Balance(ctx, userID)
	}
	if err != nil {
		return 0, fmt.Errorf("debit wallet: %w", err)
	}

	metrics.ObserveLedger("debit")
	s.logger.Info("wallet debited",
		logger.String("user_id", userID),
		logger.Int64("amount", amount),
		logger.String("reason", reason),
	)

	return balance, nil
}

// History returns the balance and entries, newest first.
func (s *LedgerService) History(ctx context.Context, userID string) (*domain.Wallet, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	entries, err := s.wallets.History(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wallet history: %w", err)
	}

	// storage order is insertion order; reverse first so equal dates stay newest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return &domain.Wallet{Balance: user.Wallet, History: entries}, nil
}

// Balance reads the cached wallet balance.
func (s *LedgerService) Balance(ctx context.Context, userID string) (int64, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get user: %w", err)
	}
	return user.Wallet, nil
}

func (s *LedgerService) newEntry(userID string, amount int64, reason, key string) *domain.WalletEntry {
	return &domain.WalletEntry{
		ID:             uuid.New().String(),
		UserID:         userID,
		Amount:         amount,
		Message:        reason,
		IdempotencyKey: key,
		Date:           s.now().UTC(),
	}
}
