package ports

import (
	"context"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
)

type BookingRepo interface {
	// Create inserts the booking only if no active booking on the same hotel
	// overlaps its stay. It returns domain.ErrSlotUnavailable otherwise.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByPaymentIntent(ctx context.Context, intentID string) (*domain.Booking, error)
	// UpdateStatus is a compare-and-set on the current status. It returns
	// domain.ErrInvalidTransition when the booking is not in status from.
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus, reason *string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListDueReminders(ctx context.Context, from, to time.Time, maxAttempts int) ([]*domain.Booking, error)
	MarkReminderSent(ctx context.Context, id string) error
	IncReminderAttempts(ctx context.Context, id string) error
}
