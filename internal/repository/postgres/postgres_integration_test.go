//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/repository/postgres"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

const migrationsDir = "../../../migrations"

func startPostgres(t *testing.T) *dbpg.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "dockertest")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_DB=havenhues",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "run postgres")
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("host=127.0.0.1 port=%s user=postgres password=postgres dbname=havenhues sslmode=disable",
		resource.GetPort("5432/tcp"))

	var raw *sql.DB
	require.NoError(t, pool.Retry(func() error {
		var e error
		raw, e = sql.Open("postgres", dsn)
		if e != nil {
			return e
		}
		return raw.Ping()
	}), "connect postgres")
	t.Cleanup(func() { _ = raw.Close() })

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(raw, migrationsDir))

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 10, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })

	return db
}

func seed(t *testing.T, db *dbpg.DB) (userID, managerID, hotelID string) {
	t.Helper()
	ctx := context.Background()
	users := postgres.NewUserRepo(db)

	managerID, userID, hotelID = uuid.NewString(), uuid.NewString(), "h-"+uuid.NewString()[:8]
	for i, id := range []string{managerID, userID} {
		require.NoError(t, users.Create(ctx, &domain.User{
			ID:           id,
			Name:         fmt.Sprintf("user %d", i),
			Email:        id + "@example.com",
			ReferralCode: id[:8],
			CreatedAt:    time.Now().UTC(),
		}))
	}

	_, err := db.Master.ExecContext(ctx,
		`INSERT INTO hotels (id, manager_id, name, price_per_night, extra_bed_charge, max_adults, max_children, max_extra_beds)
		 VALUES ($1, $2, 'Haven', 10000, 2000, 4, 2, 2)`, hotelID, managerID)
	require.NoError(t, err)

	return userID, managerID, hotelID
}

func stayOn(userID, hotelID string, in, out int) *domain.Booking {
	now := time.Now().UTC()
	return &domain.Booking{
		ID:            uuid.NewString(),
		HotelID:       hotelID,
		UserID:        userID,
		Guest:         domain.GuestDetails{Name: "Guest"},
		AdultCount:    2,
		CheckIn:       time.Date(2026, 4, in, 14, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 4, out, 11, 0, 0, 0, time.UTC),
		TotalCost:     20000,
		PaymentMethod: domain.PaymentMethodWallet,
		Status:        domain.BookingStatusCompleted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestPostgres_Repositories(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	bookings := postgres.NewBookingRepo(db)
	hotels := postgres.NewHotelRepo(db)
	wallets := postgres.NewWalletRepo(db)
	coupons := postgres.NewCouponRepo(db)
	tx := postgres.NewTransactor(db)

	t.Run("concurrent overlapping creates admit one", func(t *testing.T) {
		userID, _, hotelID := seed(t, db)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			ok, bad int
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := bookings.Create(ctx, stayOn(userID, hotelID, 1, 3))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					ok++
				case errors.Is(err, domain.ErrSlotUnavailable):
					bad++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, ok)
		assert.Equal(t, 7, bad)
	})

	t.Run("back to back stays do not conflict", func(t *testing.T) {
		userID, _, hotelID := seed(t, db)
		first := stayOn(userID, hotelID, 1, 3)
		first.CheckOut = time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)
		second := stayOn(userID, hotelID, 3, 5)
		second.CheckIn = first.CheckOut

		require.NoError(t, bookings.Create(ctx, first))
		require.NoError(t, bookings.Create(ctx, second))

		overlap, err := hotels.HasOverlap(ctx, hotelID, domain.StayRange{CheckIn: first.CheckOut, CheckOut: second.CheckIn})
		require.NoError(t, err)
		assert.False(t, overlap)
	})

	t.Run("status compare and set", func(t *testing.T) {
		userID, _, hotelID := seed(t, db)
		b := stayOn(userID, hotelID, 10, 12)
		require.NoError(t, bookings.Create(ctx, b))

		reason := "plans changed"
		require.NoError(t, bookings.UpdateStatus(ctx, b.ID, domain.BookingStatusCompleted, domain.BookingStatusCancelPending, &reason))
		err := bookings.UpdateStatus(ctx, b.ID, domain.BookingStatusCompleted, domain.BookingStatusCancelPending, &reason)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		err = bookings.UpdateStatus(ctx, uuid.NewString(), domain.BookingStatusCompleted, domain.BookingStatusCancelPending, nil)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)

		got, err := bookings.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelPending, got.Status)
		require.NotNil(t, got.CancellationReason)
		assert.Equal(t, reason, *got.CancellationReason)

		// a cancelled booking frees its slot
		require.NoError(t, bookings.UpdateStatus(ctx, b.ID, domain.BookingStatusCancelPending, domain.BookingStatusCancelled, nil))
		require.NoError(t, bookings.Create(ctx, stayOn(userID, hotelID, 10, 12)))
	})

	t.Run("wallet debit is guarded and keyed", func(t *testing.T) {
		userID, _, _ := seed(t, db)
		entry := func(amount int64, key string) *domain.WalletEntry {
			return &domain.WalletEntry{
				ID: uuid.NewString(), UserID: userID, Amount: amount,
				Message: "test", IdempotencyKey: key, Date: time.Now().UTC(),
			}
		}

		bal, err := wallets.Credit(ctx, entry(5000, "k1"))
		require.NoError(t, err)
		assert.Equal(t, int64(5000), bal)

		_, err = wallets.Credit(ctx, entry(5000, "k1"))
		assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

		_, err = wallets.Debit(ctx, entry(-6000, "k2"))
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		bal, err = wallets.Debit(ctx, entry(-3000, "k3"))
		require.NoError(t, err)
		assert.Equal(t, int64(2000), bal)

		history, err := wallets.History(ctx, userID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		var sum int64
		for _, e := range history {
			sum += e.Amount
		}
		assert.Equal(t, bal, sum)
	})

	t.Run("transaction rolls back debit when booking fails", func(t *testing.T) {
		userID, _, hotelID := seed(t, db)
		require.NoError(t, bookings.Create(ctx, stayOn(userID, hotelID, 20, 22)))
		_, err := wallets.Credit(ctx, &domain.WalletEntry{
			ID: uuid.NewString(), UserID: userID, Amount: 50000, Message: "top up", Date: time.Now().UTC(),
		})
		require.NoError(t, err)

		err = tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := wallets.Debit(ctx, &domain.WalletEntry{
				ID: uuid.NewString(), UserID: userID, Amount: -20000, Message: "booking", Date: time.Now().UTC(),
			}); err != nil {
				return err
			}
			return bookings.Create(ctx, stayOn(userID, hotelID, 21, 23))
		})
		assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

		history, err := wallets.History(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("coupon use is single per user", func(t *testing.T) {
		userID, _, _ := seed(t, db)
		code := "SAVE" + uuid.NewString()[:4]
		_, err := db.Master.ExecContext(ctx,
			`INSERT INTO coupons (code, discount_type, discount, usage_limit, expiry, status)
			 VALUES ($1, 'percentage', 20, 1, $2, 'active')`, code, time.Now().Add(24*time.Hour))
		require.NoError(t, err)

		now := time.Now()
		require.NoError(t, coupons.ConsumeUse(ctx, code, userID, now))
		assert.ErrorIs(t, coupons.ConsumeUse(ctx, code, userID, now), domain.ErrCouponAlreadyApplied)

		other, _, _ := seed(t, db)
		assert.ErrorIs(t, coupons.ConsumeUse(ctx, code, other, now), domain.ErrCouponInvalid, "limit exhausted")

		require.NoError(t, coupons.ReleaseUse(ctx, code, userID))
		c, err := coupons.GetByCode(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Limit)
		assert.Empty(t, c.UsedBy)

		red := &domain.Redemption{
			PaymentIntentID: "pi_" + uuid.NewString()[:8], Code: code, UserID: userID,
			OriginalAmount: 20000, DiscountAmount: 4000, NewAmount: 16000,
			Status: domain.RedemptionPending, CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, coupons.InsertRedemption(ctx, red))
		assert.ErrorIs(t, coupons.InsertRedemption(ctx, red), domain.ErrRedemptionExists)
		require.NoError(t, coupons.MarkRedemptionApplied(ctx, red.PaymentIntentID))

		got, err := coupons.GetRedemption(ctx, red.PaymentIntentID)
		require.NoError(t, err)
		assert.Equal(t, domain.RedemptionApplied, got.Status)
	})

	t.Run("due reminders", func(t *testing.T) {
		userID, _, hotelID := seed(t, db)
		b := stayOn(userID, hotelID, 25, 27)
		require.NoError(t, bookings.Create(ctx, b))

		from := b.CheckIn.Add(-time.Hour)
		to := b.CheckIn.Add(time.Hour)

		due, err := bookings.ListDueReminders(ctx, from, to, 3)
		require.NoError(t, err)
		require.Len(t, due, 1)

		require.NoError(t, bookings.MarkReminderSent(ctx, b.ID))
		due, err = bookings.ListDueReminders(ctx, from, to, 3)
		require.NoError(t, err)
		assert.Empty(t, due)
	})
}
