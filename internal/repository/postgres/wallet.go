package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
)

// WalletRepository keeps users.wallet equal to the sum of the user's
// wallet_entries. Both change in one transaction.
type WalletRepository struct {
	base
}

func NewWalletRepo(db *dbpg.DB) *WalletRepository {
	return &WalletRepository{base: newBase(db)}
}

func (r *WalletRepository) Credit(ctx context.Context, entry *domain.WalletEntry) (int64, error) {
	return r.apply(ctx, entry, false)
}

func (r *WalletRepository) Debit(ctx context.Context, entry *domain.WalletEntry) (int64, error) {
	return r.apply(ctx, entry, true)
}

// apply inserts the entry first; ON CONFLICT keeps a replayed key from
// aborting an enclosing transaction.
func (r *WalletRepository) apply(ctx context.Context, entry *domain.WalletEntry, guard bool) (int64, error) {
	var balance int64

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		insert := `INSERT INTO wallet_entries (id, user_id, amount, message, idempotency_key, created_at)
				   VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
				   ON CONFLICT (idempotency_key) DO NOTHING`
		res, err := tx.ExecContext(
			ctx, insert,
			entry.ID, entry.UserID, entry.Amount, entry.Message, entry.IdempotencyKey, entry.Date,
		)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("insert wallet entry: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("wallet entry rows affected: %w", err)
		}
		if n == 0 {
			return domain.ErrDuplicateEntry
		}

		update := `UPDATE users SET wallet = wallet + $2
				   WHERE id = $1 AND ($3 = false OR wallet + $2 >= 0)
				   RETURNING wallet`
		err = tx.QueryRowContext(ctx, update, entry.UserID, entry.Amount, guard).Scan(&balance)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrInsufficientFunds
		}
		if err != nil {
			return fmt.Errorf("update wallet: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}

func (r *WalletRepository) History(ctx context.Context, userID string) ([]domain.WalletEntry, error) {
	query := `SELECT id, user_id, amount, message, COALESCE(idempotency_key, ''), created_at
			  FROM wallet_entries
			  WHERE user_id = $1
			  ORDER BY seq`

	rows, err := r.query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("wallet history: %w", err)
	}
	defer rows.Close()

	var res []domain.WalletEntry
	for rows.Next() {
		var e domain.WalletEntry
		if err = rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Message, &e.IdempotencyKey, &e.Date); err != nil {
			return nil, fmt.Errorf("scan wallet entry: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}
