package ports

import (
	"context"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
)

type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string, md domain.IntentMetadata) (*domain.PaymentIntent, error)
	RetrieveIntent(ctx context.Context, id string) (*domain.PaymentIntent, error)
	AmendIntent(ctx context.Context, id string, amount int64) (*domain.PaymentIntent, error)
}
