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

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
)

const bookingColumns = `id, hotel_id, user_id, guest_name, guest_email, guest_phone,
	adult_count, child_count, extra_bed_count, check_in, check_out, total_cost,
	payment_method, payment_intent_id, status, cancellation_reason,
	reminder_sent, reminder_attempts, created_at, updated_at`

type BookingRepository struct {
	base
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{base: newBase(db)}
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := s.Scan(
		&b.ID, &b.HotelID, &b.UserID, &b.Guest.Name, &b.Guest.Email, &b.Guest.Phone,
		&b.AdultCount, &b.ChildCount, &b.ExtraBedCount, &b.CheckIn, &b.CheckOut, &b.TotalCost,
		&b.PaymentMethod, &b.PaymentIntentID, &b.Status, &b.CancellationReason,
		&b.ReminderSent, &b.ReminderAttempts, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.CheckIn, b.CheckOut = b.CheckIn.UTC(), b.CheckOut.UTC()
	return &b, nil
}

// Create locks the hotel row so concurrent creates for one hotel serialise,
// then inserts only if no active booking overlaps. The exclusion constraint
// on bookings backs this up.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		var hotelID string
		err := tx.QueryRowContext(ctx, `SELECT id FROM hotels WHERE id = $1 FOR UPDATE`, b.HotelID).Scan(&hotelID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrHotelNotFound
			}
			return fmt.Errorf("lock hotel: %w", err)
		}

		overlapQuery := `SELECT EXISTS (SELECT 1 FROM bookings
						 WHERE hotel_id = $1 AND status <> $2
						   AND check_in < $4 AND check_out > $3)`
		var overlap bool
		if err = tx.QueryRowContext(
			ctx, overlapQuery, b.HotelID, domain.BookingStatusCancelled, b.CheckIn, b.CheckOut,
		).Scan(&overlap); err != nil {
			return fmt.Errorf("check overlap: %w", err)
		}
		if overlap {
			return domain.ErrSlotUnavailable
		}

		query := `INSERT INTO bookings (` + bookingColumns + `)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
				          $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
		_, err = tx.ExecContext(
			ctx, query,
			b.ID, b.HotelID, b.UserID, b.Guest.Name, b.Guest.Email, b.Guest.Phone,
			b.AdultCount, b.ChildCount, b.ExtraBedCount, b.CheckIn, b.CheckOut, b.TotalCost,
			b.PaymentMethod, b.PaymentIntentID, b.Status, b.CancellationReason,
			b.ReminderSent, b.ReminderAttempts, b.CreatedAt, b.UpdatedAt,
		)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case pgExclusionViolation:
					return domain.ErrSlotUnavailable
				case pgUniqueViolation:
					return fmt.Errorf("%w: intent already settled", domain.ErrPaymentMismatch)
				case pgForeignKeyViolation:
					return domain.ErrUserNotFound
				}
			}
			return fmt.Errorf("insert booking: %w", err)
		}

		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

func (r *BookingRepository) GetByPaymentIntent(ctx context.Context, intentID string) (*domain.Booking, error) {
	return r.getOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE payment_intent_id = $1`, intentID)
}

func (r *BookingRepository) getOne(ctx context.Context, query string, arg any) (*domain.Booking, error) {
	row, err := r.queryRow(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus, reason *string) error {
	query := `UPDATE bookings
			  SET status = $3,
			      cancellation_reason = COALESCE($4, cancellation_reason),
			      updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.exec(ctx, query, id, from, to, reason)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// either the booking is gone or another caller moved it first
	row, err := r.queryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id)
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}
	var exists bool
	if err = row.Scan(&exists); err != nil {
		return fmt.Errorf("scan booking exists: %w", err)
	}
	if !exists {
		return domain.ErrBookingNotFound
	}
	return domain.ErrInvalidTransition
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY check_in DESC`

	return r.list(ctx, query, userID)
}

func (r *BookingRepository) ListDueReminders(ctx context.Context, from, to time.Time, maxAttempts int) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = $1
			    AND reminder_sent = false
			    AND reminder_attempts < $2
			    AND check_in >= $3
			    AND check_in < $4
			  ORDER BY check_in`

	return r.list(ctx, query, domain.BookingStatusCompleted, maxAttempts, from, to)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) MarkReminderSent(ctx context.Context, id string) error {
	query := `UPDATE bookings SET reminder_sent = true, updated_at = now()
			  WHERE id = $1 AND reminder_sent = false`
	if _, err := r.exec(ctx, query, id); err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}
	return nil
}

func (r *BookingRepository) IncReminderAttempts(ctx context.Context, id string) error {
	query := `UPDATE bookings SET reminder_attempts = reminder_attempts + 1, updated_at = now()
			  WHERE id = $1`
	if _, err := r.exec(ctx, query, id); err != nil {
		return fmt.Errorf("inc reminder attempts: %w", err)
	}
	return nil
}
