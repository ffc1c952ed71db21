package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/metrics"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/time/rate"
)

const maxAttempts = 2

type Options struct {
	SecretKey string
	// BaseURL overrides the Stripe API endpoint. Empty means the default.
	BaseURL string
	Timeout time.Duration
	RPS     int
	Backoff time.Duration
}

// StripeGateway talks to the Stripe payment intents API. Each call is rate
// limited, bounded by Timeout and retried once on transient failures.
type StripeGateway struct {
	api     *client.API
	rl      *rate.Limiter
	timeout time.Duration
	backoff time.Duration
	logger  logger.Logger
}

func NewStripeGateway(opts Options, logger logger.Logger) *StripeGateway {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RPS <= 0 {
		opts.RPS = 20
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 200 * time.Millisecond
	}

	cfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
		HTTPClient:        &http.Client{Timeout: opts.Timeout},
	}
	if opts.BaseURL != "" {
		cfg.URL = stripe.String(opts.BaseURL)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, cfg)

	api := &client.API{}
	api.Init(opts.SecretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	return &StripeGateway{
		api:     api,
		rl:      rate.NewLimiter(rate.Limit(opts.RPS), opts.RPS),
		timeout: opts.Timeout,
		backoff: opts.Backoff,
		logger:  logger,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string, md domain.IntentMetadata) (*domain.PaymentIntent, error) {
	// one key for every attempt so a retried create cannot charge twice
	key := uuid.New().String()

	return g.call(ctx, "create", func(ctx context.Context) (*stripe.PaymentIntent, error) {
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(amount),
			Currency: stripe.String(currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		}
		params.Context = ctx
		params.IdempotencyKey = stripe.String(key)
		params.AddMetadata(domain.MetadataHotelID, md.HotelID)
		params.AddMetadata(domain.MetadataUserID, md.UserID)
		return g.api.PaymentIntents.New(params)
	})
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	return g.call(ctx, "retrieve", func(ctx context.Context) (*stripe.PaymentIntent, error) {
		params := &stripe.PaymentIntentParams{}
		params.Context = ctx
		return g.api.PaymentIntents.Get(id, params)
	})
}

func (g *StripeGateway) AmendIntent(ctx context.Context, id string, amount int64) (*domain.PaymentIntent, error) {
	return g.call(ctx, "amend", func(ctx context.Context) (*stripe.PaymentIntent, error) {
		params := &stripe.PaymentIntentParams{Amount: stripe.Int64(amount)}
		params.Context = ctx
		return g.api.PaymentIntents.Update(id, params)
	})
}

func (g *StripeGateway) call(
	ctx context.Context,
	op string,
	fn func(ctx context.Context) (*stripe.PaymentIntent, error),
) (*domain.PaymentIntent, error) {
	start := time.Now()
	pi, err := g.do(ctx, op, fn)
	metrics.ObserveGateway(op, err, time.Since(start))
	if err != nil {
		return nil, err
	}
	return toDomain(pi), nil
}

func (g *StripeGateway) do(
	ctx context.Context,
	op string,
	fn func(ctx context.Context) (*stripe.PaymentIntent, error),
) (*stripe.PaymentIntent, error) {
	if err := g.rl.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 && !sleepCtx(ctx, g.backoff) {
			break
		}

		attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
		pi, err := fn(attemptCtx)
		cancel()
		if err == nil {
			return pi, nil
		}

		var serr *stripe.Error
		if errors.As(err, &serr) && !transient(serr) {
			if serr.HTTPStatusCode == http.StatusNotFound || serr.Code == stripe.ErrorCodeResourceMissing {
				return nil, domain.ErrPaymentIntentNotFound
			}
			return nil, fmt.Errorf("%w: stripe %s: %w", domain.ErrGatewayRejected, op, err)
		}

		lastErr = err
		g.logger.Warn("payment gateway call failed",
			logger.String("operation", op),
			logger.Int("attempt", attempt+1),
			logger.String("error", err.Error()),
		)
	}

	if lastErr == nil {
		lastErr = ctx.Err()
	}
	return nil, fmt.Errorf("%w: %s: %v", domain.ErrGatewayUnavailable, op, lastErr)
}

func transient(e *stripe.Error) bool {
	return e.HTTPStatusCode == http.StatusTooManyRequests || e.HTTPStatusCode >= http.StatusInternalServerError
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func toDomain(pi *stripe.PaymentIntent) *domain.PaymentIntent {
	return &domain.PaymentIntent{
		ID:       pi.ID,
		Amount:   pi.Amount,
		Currency: string(pi.Currency),
		Status:   domain.PaymentIntentStatus(pi.Status),
		Metadata: domain.IntentMetadata{
			HotelID: pi.Metadata[domain.MetadataHotelID],
			UserID:  pi.Metadata[domain.MetadataUserID],
		},
		ClientSecret: pi.ClientSecret,
	}
}
