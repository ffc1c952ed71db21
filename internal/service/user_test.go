package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mapCache is a ports.Cache over a map, values stored as strings.
type mapCache map[string]string

func (c mapCache) Get(_ context.Context, key string, dst any) (bool, error) {
	v, ok := c[key]
	if !ok {
		return false, nil
	}
	*dst.(*string) = v
	return true, nil
}

func (c mapCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	c[key] = v.(string)
	return nil
}

func (c mapCache) Del(_ context.Context, key string) error {
	delete(c, key)
	return nil
}

func TestOTPService_IssueAndVerify(t *testing.T) {
	cache := mapCache{}
	notifier := mocks.NewMockNotifier(t)
	svc := NewOTPService(cache, notifier, 10*time.Minute, newTestLogger(t))

	var body string
	notifier.EXPECT().Send(mock.Anything, domain.Recipient{Email: "ann@example.com"}, "Verify your email", mock.Anything).
		Run(func(_ context.Context, _ domain.Recipient, _ string, b string) { body = b }).
		Return(nil)

	require.NoError(t, svc.Issue(context.Background(), " Ann@Example.com "))

	code := cache["otp:ann@example.com"]
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
	assert.Contains(t, body, code)

	assert.ErrorIs(t, svc.Verify(context.Background(), "ann@example.com", "000000x"), domain.ErrOTPInvalid)
	require.NoError(t, svc.Verify(context.Background(), "ann@example.com", code))

	// single use
	assert.ErrorIs(t, svc.Verify(context.Background(), "ann@example.com", code), domain.ErrOTPInvalid)
}

func TestOTPService_Issue_InvalidEmail(t *testing.T) {
	svc := NewOTPService(mapCache{}, nil, time.Minute, newTestLogger(t))

	err := svc.Issue(context.Background(), "not-an-email")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOTPService_Issue_SendFailure(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	svc := NewOTPService(mapCache{}, notifier, time.Minute, newTestLogger(t))

	sendErr := errors.New("mail down")
	notifier.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(sendErr)

	err := svc.Issue(context.Background(), "ann@example.com")

	assert.ErrorIs(t, err, sendErr)
}

func TestOTPService_Verify_CacheError(t *testing.T) {
	cache := mocks.NewMockCache(t)
	svc := NewOTPService(cache, nil, time.Minute, newTestLogger(t))

	cacheErr := errors.New("redis down")
	cache.EXPECT().Get(mock.Anything, "otp:ann@example.com", mock.Anything).Return(false, cacheErr)

	err := svc.Verify(context.Background(), "ann@example.com", "123456")

	assert.ErrorIs(t, err, cacheErr)
}

func newUserService(t *testing.T, store *memStore, cache mapCache) *UserService {
	t.Helper()
	log := newTestLogger(t)
	ledger := NewLedgerService(memUsers{store}, memWallets{store}, log)
	otp := NewOTPService(cache, discardNotifier{}, time.Minute, log)
	svc := NewUserService(memUsers{store}, ledger, otp, store, ReferralConfig{RefereeBonus: 5000, ReferrerBonus: 10000}, log)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func registerRequest(email, referral string) domain.RegisterRequest {
	return domain.RegisterRequest{Name: "Ann", Email: email, ReferralCode: referral, OTP: "123456"}
}

func TestUserService_Register_Success(t *testing.T) {
	store := newMemStore()
	cache := mapCache{"otp:ann@example.com": "123456"}
	svc := newUserService(t, store, cache)

	user, err := svc.Register(context.Background(), registerRequest("ann@example.com", ""))

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Len(t, user.ReferralCode, 8)
	assert.Equal(t, int64(0), user.Wallet)
	assert.Nil(t, user.ReferredBy)
	assert.Contains(t, store.users, user.ID)
	assert.Empty(t, cache)
}

func TestUserService_Register_WithReferral(t *testing.T) {
	store := newMemStore()
	store.users["ref"] = domain.User{ID: "ref", Email: "ref@example.com", ReferralCode: "FRIEND42", Wallet: 100}
	cache := mapCache{"otp:ann@example.com": "123456"}
	svc := newUserService(t, store, cache)

	user, err := svc.Register(context.Background(), registerRequest("ann@example.com", "FRIEND42"))

	require.NoError(t, err)
	require.NotNil(t, user.ReferredBy)
	assert.Equal(t, "ref", *user.ReferredBy)
	assert.Equal(t, int64(5000), user.Wallet)
	assert.Equal(t, int64(5000), store.users[user.ID].Wallet)
	assert.Equal(t, int64(10100), store.users["ref"].Wallet)
	assert.Len(t, store.entries, 2)
}

func TestUserService_Register_UnknownReferral(t *testing.T) {
	store := newMemStore()
	svc := newUserService(t, store, mapCache{"otp:ann@example.com": "123456"})

	_, err := svc.Register(context.Background(), registerRequest("ann@example.com", "NOBODY"))

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, store.users)
}

func TestUserService_Register_WrongOTP(t *testing.T) {
	store := newMemStore()
	svc := newUserService(t, store, mapCache{"otp:ann@example.com": "654321"})

	_, err := svc.Register(context.Background(), registerRequest("ann@example.com", ""))

	assert.ErrorIs(t, err, domain.ErrOTPInvalid)
	assert.Empty(t, store.users)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	store := newMemStore()
	store.users["u0"] = domain.User{ID: "u0", Email: "ann@example.com"}
	svc := newUserService(t, store, mapCache{"otp:ann@example.com": "123456"})

	_, err := svc.Register(context.Background(), registerRequest("ann@example.com", ""))

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Register_InvalidRequest(t *testing.T) {
	svc := newUserService(t, newMemStore(), mapCache{})

	_, err := svc.Register(context.Background(), domain.RegisterRequest{Name: "Ann", Email: "bad", OTP: "123456"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
