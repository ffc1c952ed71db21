package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type txKey struct{}

func txFrom(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// Transactor opens one *sql.Tx and hands it to repositories through ctx.
// Nested calls join the outer transaction.
type Transactor struct {
	db *dbpg.DB
}

func NewTransactor(db *dbpg.DB) *Transactor {
	return &Transactor{db: db}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// base routes statements to the ctx transaction when there is one and to
// the pool with retries otherwise.
type base struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func newBase(db *dbpg.DB) base {
	return base{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (b base) queryRow(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	if tx, ok := txFrom(ctx); ok {
		return tx.QueryRowContext(ctx, query, args...), nil
	}
	return b.db.QueryRowWithRetry(ctx, b.strategy, query, args...)
}

func (b base) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if tx, ok := txFrom(ctx); ok {
		return tx.QueryContext(ctx, query, args...)
	}
	return b.db.QueryWithRetry(ctx, b.strategy, query, args...)
}

func (b base) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx, ok := txFrom(ctx); ok {
		return tx.ExecContext(ctx, query, args...)
	}
	return b.db.ExecWithRetry(ctx, b.strategy, query, args...)
}

// inTx runs fn on the ctx transaction, or on a fresh one it commits itself.
func (b base) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if tx, ok := txFrom(ctx); ok {
		return fn(tx)
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}
