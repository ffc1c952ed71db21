package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const otpDigits = 6

type OTPService struct {
	cache    ports.Cache
	notifier ports.Notifier
	ttl      time.Duration
	logger   logger.Logger
}

func NewOTPService(cache ports.Cache, notifier ports.Notifier, ttl time.Duration, logger logger.Logger) *OTPService {
	return &OTPService{cache: cache, notifier: notifier, ttl: ttl, logger: logger}
}

func otpKey(email string) string {
	return "otp:" + strings.ToLower(strings.TrimSpace(email))
}

// Issue stores a fresh code for email, replacing any earlier one, and mails it.
func (s *OTPService) Issue(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	if err = s.cache.Set(ctx, otpKey(email), code, s.ttl); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	body := fmt.Sprintf("Your HavenHues verification code is %s. It expires in %s.", code, s.ttl)
	if err = s.notifier.Send(ctx, domain.Recipient{Email: email}, "Verify your email", body); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}

	s.logger.Debug("otp issued", logger.String("email", email))

	return nil
}

// Verify consumes the code on success.
func (s *OTPService) Verify(ctx context.Context, email, code string) error {
	var stored string
	ok, err := s.cache.Get(ctx, otpKey(email), &stored)
	if err != nil {
		return fmt.Errorf("load otp: %w", err)
	}
	if !ok || subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return domain.ErrOTPInvalid
	}

	if err = s.cache.Del(ctx, otpKey(email)); err != nil {
		s.logger.Warn("failed to delete used otp",
			logger.String("email", email),
			logger.String("error", err.Error()),
		)
	}
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
