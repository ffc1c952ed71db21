package service

import (
	"context"
	"fmt"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02 Jan 2006"

// bookingNotifier renders booking messages. Everything except Reminder is
// fire-and-forget: failures are logged, never returned.
type bookingNotifier struct {
	notifier ports.Notifier
	logger   logger.Logger
}

func (n bookingNotifier) Confirmed(ctx context.Context, user *domain.User, hotel *domain.Hotel, b *domain.Booking) {
	body := fmt.Sprintf(
		"Your stay at %s is confirmed.\n\nCheck-in: %s\nCheck-out: %s\nTotal paid: %s\nBooking ID: %s",
		hotel.Name, b.CheckIn.Format(dateLayout), b.CheckOut.Format(dateLayout), formatAmount(b.TotalCost), b.ID,
	)
	n.send(ctx, user.Recipient(), "Booking confirmed", body)
}

func (n bookingNotifier) CancellationRequested(ctx context.Context, manager *domain.User, hotel *domain.Hotel, b *domain.Booking) {
	reason := ""
	if b.CancellationReason != nil {
		reason = *b.CancellationReason
	}
	body := fmt.Sprintf(
		"A guest asked to cancel booking %s at %s (%s to %s).\n\nReason: %s",
		b.ID, hotel.Name, b.CheckIn.Format(dateLayout), b.CheckOut.Format(dateLayout), reason,
	)
	n.send(ctx, manager.Recipient(), "Cancellation requested", body)
}

func (n bookingNotifier) CancellationDecided(ctx context.Context, user *domain.User, hotel *domain.Hotel, b *domain.Booking) {
	var body string
	if b.Status == domain.BookingStatusCancelled {
		body = fmt.Sprintf(
			"Your cancellation for %s was accepted. %s has been credited to your wallet.",
			hotel.Name, formatAmount(b.TotalCost),
		)
	} else {
		body = fmt.Sprintf(
			"Your cancellation for %s was declined. Your booking from %s stays active.",
			hotel.Name, b.CheckIn.Format(dateLayout),
		)
	}
	n.send(ctx, user.Recipient(), "Cancellation update", body)
}

func (n bookingNotifier) Reminder(ctx context.Context, user *domain.User, hotel *domain.Hotel, b *domain.Booking) error {
	body := fmt.Sprintf(
		"Hi %s, this is a reminder that your stay at %s starts on %s.\nBooking ID: %s",
		user.Name, hotel.Name, b.CheckIn.Format(dateLayout), b.ID,
	)
	return n.notifier.Send(ctx, user.Recipient(), "Upcoming check-in", body)
}

func (n bookingNotifier) send(ctx context.Context, to domain.Recipient, subject, body string) {
	if err := n.notifier.Send(ctx, to, subject, body); err != nil {
		n.logger.Error("failed to send notification",
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
	}
}

// formatAmount renders minor units with two decimals.
func formatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
