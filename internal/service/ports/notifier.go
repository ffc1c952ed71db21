package ports

import (
	"context"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
)

type Notifier interface {
	Send(ctx context.Context, to domain.Recipient, subject, body string) error
}
