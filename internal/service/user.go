package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

var validate = validator.New()

const referralAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type ReferralConfig struct {
	RefereeBonus  int64
	ReferrerBonus int64
}

type UserService struct {
	repo     ports.UserRepo
	ledger   *LedgerService
	otp      *OTPService
	tx       ports.Transactor
	referral ReferralConfig
	logger   logger.Logger
	now      func() time.Time
}

func NewUserService(
	repo ports.UserRepo,
	ledger *LedgerService,
	otp *OTPService,
	tx ports.Transactor,
	referral ReferralConfig,
	logger logger.Logger,
) *UserService {
	return &UserService{
		repo:     repo,
		ledger:   ledger,
		otp:      otp,
		tx:       tx,
		referral: referral,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates a verified user. With a referral code both sides get their
// bonus in the same transaction as the user row.
func (s *UserService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.otp.Verify(ctx, req.Email, req.OTP); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	var referrer *domain.User
	if req.ReferralCode != "" {
		r, err := s.repo.GetByReferralCode(ctx, req.ReferralCode)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown referral code", domain.ErrValidation)
		}
		if err != nil {
			return nil, fmt.Errorf("get referrer: %w", err)
		}
		referrer = r
	}

	code, err := generateReferralCode()
	if err != nil {
		return nil, fmt.Errorf("generate referral code: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
		ReferralCode:   code,
		CreatedAt:      s.now().UTC(),
	}
	if referrer != nil {
		user.ReferredBy = &referrer.ID
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if referrer == nil {
			return nil
		}
		if s.referral.RefereeBonus > 0 {
			balance, err := s.ledger.Credit(ctx, user.ID, s.referral.RefereeBonus,
				"Referral sign-up bonus", "referral:referee:"+user.ID)
			if err != nil {
				return err
			}
			user.Wallet = balance
		}
		if s.referral.ReferrerBonus > 0 {
			_, err := s.ledger.Credit(ctx, referrer.ID, s.referral.ReferrerBonus,
				fmt.Sprintf("Referral bonus for inviting %s", user.Name), "referral:referrer:"+user.ID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		logger.String("user_id", user.ID),
		logger.Any("referred", referrer != nil),
	)

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func generateReferralCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = referralAlphabet[int(b)%len(referralAlphabet)]
	}
	return string(buf), nil
}
